package appwrite

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sangkips/laundrypro-api/internal/config"
	domainRepo "github.com/sangkips/laundrypro-api/internal/domain/repository"
	"github.com/sangkips/laundrypro-api/pkg/apperror"
)

// BackendName identifies this driver in logs and store errors
const BackendName = "appwrite"

const (
	defaultPageSize = 100
	uniqueID        = "unique()"
	attrCreatedAt   = "$createdAt"
)

// Driver is the document-store backend speaking the Appwrite REST API
type Driver struct {
	c           *client
	collections config.AppwriteCollections
	pageSize    int
}

// New creates the Appwrite driver. The HTTP client is bounded by timeout.
func New(cfg *config.AppwriteConfig, pageSize int, timeout time.Duration) *Driver {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Driver{
		c: &client{
			endpoint: cfg.Endpoint,
			project:  cfg.ProjectID,
			apiKey:   cfg.APIKey,
			database: cfg.DatabaseID,
			http:     &http.Client{Timeout: timeout},
		},
		collections: cfg.Collections,
		pageSize:    pageSize,
	}
}

var _ domainRepo.Backend = (*Driver)(nil)

func (d *Driver) Name() string {
	return BackendName
}

// Ping lists a single catalog document
func (d *Driver) Ping(ctx context.Context) error {
	var out documentList[serviceDoc]
	return d.c.do(ctx, "ping", http.MethodGet, d.collections.Services, "", []query{limit(1)}, nil, &out)
}

func (d *Driver) Services() domainRepo.ServiceRepository {
	return &serviceRepository{d: d}
}

func (d *Driver) Orders() domainRepo.OrderRepository {
	return &orderRepository{d: d}
}

func (d *Driver) Incomes() domainRepo.IncomeRepository {
	return &incomeRepository{d: d}
}

func (d *Driver) Expenses() domainRepo.ExpenseRepository {
	return &expenseRepository{d: d}
}

func (d *Driver) Profiles() domainRepo.ProfileRepository {
	return &profileRepository{d: d}
}

func (d *Driver) PrintedInvoices() domainRepo.PrintedInvoiceRepository {
	return &printedInvoiceRepository{d: d}
}

// document is a pointer to a decoded Appwrite document of entity T
type document[D any, T any] interface {
	*D
	entity() (T, error)
}

func listDocuments[D any, T any, P document[D, T]](ctx context.Context, c *client, op, collection string, queries ...query) ([]T, error) {
	var out documentList[D]
	if err := c.do(ctx, op, http.MethodGet, collection, "", queries, nil, &out); err != nil {
		return nil, err
	}

	items := make([]T, 0, len(out.Documents))
	for i := range out.Documents {
		item, err := P(&out.Documents[i]).entity()
		if err != nil {
			return nil, c.fail(op, apperror.KindCorrupt, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func getDocument[D any, T any, P document[D, T]](ctx context.Context, c *client, op, collection, id string) (*T, error) {
	var doc D
	if err := c.do(ctx, op, http.MethodGet, collection, id, nil, nil, &doc); err != nil {
		return nil, err
	}
	return decode[D, T, P](c, op, &doc)
}

func createDocument[D any, T any, P document[D, T]](ctx context.Context, c *client, op, collection string, data interface{}) (*T, error) {
	var doc D
	req := createRequest{DocumentID: uniqueID, Data: data}
	if err := c.do(ctx, op, http.MethodPost, collection, "", nil, req, &doc); err != nil {
		return nil, err
	}
	return decode[D, T, P](c, op, &doc)
}

// updateDocument sends only the given attributes. With nothing to change it
// reads the document back instead.
func updateDocument[D any, T any, P document[D, T]](ctx context.Context, c *client, op, collection, id string, data map[string]interface{}) (*T, error) {
	if len(data) == 0 {
		return getDocument[D, T, P](ctx, c, op, collection, id)
	}

	var doc D
	if err := c.do(ctx, op, http.MethodPatch, collection, id, nil, updateRequest{Data: data}, &doc); err != nil {
		return nil, err
	}
	return decode[D, T, P](c, op, &doc)
}

func deleteDocument(ctx context.Context, c *client, op, collection, id string) error {
	return c.do(ctx, op, http.MethodDelete, collection, id, nil, nil, nil)
}

func decode[D any, T any, P document[D, T]](c *client, op string, doc *D) (*T, error) {
	item, err := P(doc).entity()
	if err != nil {
		return nil, c.fail(op, apperror.KindCorrupt, err)
	}
	return &item, nil
}

var errEmptyCollection = errors.New("collection has no documents")
