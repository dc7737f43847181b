package search

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/go-mongo-shop/internal/domain/entity"
)

const requestTimeout = 3 * time.Second

// productDoc is the indexed shape of a product. The store id is the document id.
type productDoc struct {
	Name        string   `json:"name"`
	Desc        string   `json:"desc,omitempty"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Category    string   `json:"category,omitempty"`
}

// ProductIndex keeps a full-text copy of the catalog. A nil *ProductIndex is a
// valid disabled index: writes are no-ops and searches return nothing.
type ProductIndex struct {
	es    *elasticsearch.Client
	index string
}

func NewProductIndex(es *elasticsearch.Client, index string) *ProductIndex {
	if es == nil || index == "" {
		return nil
	}
	return &ProductIndex{es: es, index: index}
}

func (p *ProductIndex) Index(ctx context.Context, product *entity.Product) error {
	if p == nil || product == nil {
		return nil
	}
	b, err := json.Marshal(productDoc{
		Name:        product.Name,
		Desc:        product.Desc,
		Description: product.Description,
		Image:       product.Image,
		Price:       product.Price,
		Rating:      product.Rating,
		Category:    product.Category,
	})
	if err != nil {
		return err
	}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	req := esapi.IndexRequest{Index: p.index, DocumentID: product.ID.Hex(), Body: bytes.NewReader(b), Refresh: "false"}
	res, err := req.Do(c, p.es)
	if err != nil {
		return errors.Wrap(err, "es index product")
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return errors.Errorf("es index product: %s", res.Status())
	}
	return nil
}

func (p *ProductIndex) Delete(ctx context.Context, id string) error {
	if p == nil {
		return nil
	}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	req := esapi.DeleteRequest{Index: p.index, DocumentID: id}
	res, err := req.Do(c, p.es)
	if err != nil {
		return errors.Wrap(err, "es delete product")
	}
	defer func() { _ = res.Body.Close() }()
	// a product that was never indexed is not an error
	if res.IsError() && res.StatusCode != 404 {
		return errors.Errorf("es delete product: %s", res.Status())
	}
	return nil
}

// Search runs a multi_match query over the text fields and returns at most size products.
func (p *ProductIndex) Search(ctx context.Context, q string, size int) ([]entity.Product, error) {
	out := make([]entity.Product, 0)
	if p == nil {
		return out, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^3", "desc^2", "description", "category"},
			},
		},
		"size": size,
	}
	b, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := p.es.Search(
		p.es.Search.WithContext(c),
		p.es.Search.WithIndex(p.index),
		p.es.Search.WithBody(bytes.NewReader(b)),
	)
	if err != nil {
		return nil, errors.Wrap(err, "es search products")
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, errors.Errorf("es search products: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string     `json:"_id"`
				Source productDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, errors.Wrap(err, "decode search response")
	}

	for _, h := range parsed.Hits.Hits {
		prod := entity.Product{
			Name:        h.Source.Name,
			Desc:        h.Source.Desc,
			Description: h.Source.Description,
			Image:       h.Source.Image,
			Price:       h.Source.Price,
			Rating:      h.Source.Rating,
			Category:    h.Source.Category,
		}
		if oid, err := primitive.ObjectIDFromHex(h.ID); err == nil {
			prod.ID = oid
		}
		out = append(out, prod)
	}
	return out, nil
}
