package appwrite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sangkips/laundrypro-api/internal/config"
)

// fakeAppwrite is an in-memory stand-in for the documents API
type fakeAppwrite struct {
	mu      sync.Mutex
	docs    map[string][]map[string]interface{}
	seq     int
	clock   time.Time
	status  int // when non-zero every request answers with it
	raw     string
	queries []string
	project string
}

func newFakeAppwrite(t *testing.T) (*fakeAppwrite, *Driver) {
	t.Helper()
	fake := &fakeAppwrite{
		docs:  map[string][]map[string]interface{}{},
		clock: time.Date(2025, time.January, 14, 9, 0, 0, 0, time.UTC),
	}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	cfg := &config.AppwriteConfig{
		Endpoint:   srv.URL + "/v1",
		ProjectID:  "lavanderia",
		APIKey:     "secret",
		DatabaseID: "lavanderia_db",
		Collections: config.AppwriteCollections{
			Services:        "servicios",
			Orders:          "pedidos",
			Incomes:         "ingresos",
			Expenses:        "egresos",
			Profile:         "configuracion",
			PrintedInvoices: "facturas_impresas",
		},
	}
	return fake, New(cfg, 0, 5*time.Second)
}

func (f *fakeAppwrite) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.project = r.Header.Get("X-Appwrite-Project")
	f.queries = r.URL.Query()["queries[]"]
	if f.status != 0 {
		w.WriteHeader(f.status)
		fmt.Fprintf(w, `{"message":"forced","code":%d,"type":"general_fake"}`, f.status)
		return
	}
	if f.raw != "" {
		fmt.Fprint(w, f.raw)
		return
	}

	// /v1/databases/{db}/collections/{collection}/documents[/{id}]
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 6 {
		http.NotFound(w, r)
		return
	}
	collection := parts[4]
	id := ""
	if len(parts) > 6 {
		id = parts[6]
	}

	switch {
	case r.Method == http.MethodGet && id == "":
		f.list(w, collection)
	case r.Method == http.MethodGet:
		f.withDoc(w, collection, id, func(i int) {
			writeJSON(w, http.StatusOK, f.docs[collection][i])
		})
	case r.Method == http.MethodPost:
		var req struct {
			DocumentID string                 `json:"documentId"`
			Data       map[string]interface{} `json:"data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.DocumentID != "unique()" {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{"message": "bad document"})
			return
		}
		f.seq++
		f.clock = f.clock.Add(time.Minute)
		doc := req.Data
		doc["$id"] = fmt.Sprintf("doc%d", f.seq)
		doc["$createdAt"] = f.clock.Format("2006-01-02T15:04:05.000+00:00")
		f.docs[collection] = append(f.docs[collection], doc)
		writeJSON(w, http.StatusCreated, doc)
	case r.Method == http.MethodPatch:
		var req struct {
			Data map[string]interface{} `json:"data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{"message": "bad document"})
			return
		}
		f.withDoc(w, collection, id, func(i int) {
			for k, v := range req.Data {
				f.docs[collection][i][k] = v
			}
			writeJSON(w, http.StatusOK, f.docs[collection][i])
		})
	case r.Method == http.MethodDelete:
		f.withDoc(w, collection, id, func(i int) {
			docs := f.docs[collection]
			f.docs[collection] = append(docs[:i], docs[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
		})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// list answers newest first, honouring a limit query
func (f *fakeAppwrite) list(w http.ResponseWriter, collection string) {
	docs := f.docs[collection]
	out := make([]map[string]interface{}, 0, len(docs))
	for i := len(docs) - 1; i >= 0; i-- {
		out = append(out, docs[i])
	}
	for _, raw := range f.queries {
		var q struct {
			Method string    `json:"method"`
			Values []float64 `json:"values"`
		}
		if json.Unmarshal([]byte(raw), &q) == nil && q.Method == "limit" && len(q.Values) == 1 && int(q.Values[0]) < len(out) {
			out = out[:int(q.Values[0])]
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"total": len(docs), "documents": out})
}

func (f *fakeAppwrite) withDoc(w http.ResponseWriter, collection, id string, fn func(i int)) {
	for i, doc := range f.docs[collection] {
		if doc["$id"] == id {
			fn(i)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]interface{}{
		"message": "Document with the requested ID could not be found.",
		"code":    404,
		"type":    "document_not_found",
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (f *fakeAppwrite) lastQueries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries
}

func (f *fakeAppwrite) lastProject() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.project
}

func (f *fakeAppwrite) stored(collection string) []map[string]interface{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.docs[collection]
}
