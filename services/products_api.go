// services/products_api.go
package services

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/vinshop/admin_console/models"
)

// ProductService wraps the /admin/products endpoint group. Create and update
// travel as multipart forms so the product image can ride along.
type ProductService struct {
	api *APIClient
}

func NewProductService(api *APIClient) *ProductService {
	return &ProductService{api: api}
}

func (s *ProductService) List(ctx context.Context, token string, pr models.PageRequest) (*models.Page[models.Product], error) {
	raw, err := s.api.makeRequest(ctx, http.MethodGet, "/admin/products"+pageQuery(pr), token, nil)
	if err != nil {
		return nil, err
	}
	return decodeResult[models.Page[models.Product]](raw)
}

func (s *ProductService) Get(ctx context.Context, token, id string) (*models.Product, error) {
	raw, err := s.api.makeRequest(ctx, http.MethodGet, "/admin/product/"+id, token, nil)
	if err != nil {
		return nil, err
	}
	return decodeResult[models.Product](raw)
}

// Create sends the product fields plus the optional image part. imageName keeps
// the browser's original filename; the backend derives the stored names from it.
func (s *ProductService) Create(ctx context.Context, token string, req models.CreateProductRequest, imageName string, image io.Reader) (*models.Product, error) {
	raw, err := s.api.makeMultipartRequest(ctx, http.MethodPost, "/admin/products", token,
		productFields(req), "image", imageName, image)
	if err != nil {
		return nil, err
	}
	return decodeResult[models.Product](raw)
}

func (s *ProductService) Update(ctx context.Context, token, id string, req models.UpdateProductRequest, imageName string, image io.Reader) (*models.Product, error) {
	fields := map[string]string{}
	if req.ProductName != "" {
		fields["productName"] = req.ProductName
	}
	if req.Price != nil {
		fields["price"] = strconv.FormatFloat(*req.Price, 'f', -1, 64)
	}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	if req.Stock != nil {
		fields["stock"] = strconv.Itoa(*req.Stock)
	}
	if req.SubscriptionDuration != nil {
		fields["subscriptionDuration"] = strconv.Itoa(*req.SubscriptionDuration)
	}
	if req.Category != "" {
		fields["category"] = req.Category
	}
	if req.ProductCode != "" {
		fields["productCode"] = req.ProductCode
	}

	raw, err := s.api.makeMultipartRequest(ctx, http.MethodPut, "/admin/product/"+id, token,
		fields, "image", imageName, image)
	if err != nil {
		return nil, err
	}
	return decodeResult[models.Product](raw)
}

func (s *ProductService) Delete(ctx context.Context, token, id string) error {
	_, err := s.api.makeRequest(ctx, http.MethodDelete, "/admin/product/"+id, token, nil)
	return err
}

func (s *ProductService) DeleteMany(ctx context.Context, token string, ids []string) error {
	_, err := s.api.makeRequest(ctx, http.MethodPost, "/admin/products/delete", token, models.DeleteManyRequest{IDs: ids})
	return err
}

func productFields(req models.CreateProductRequest) map[string]string {
	return map[string]string{
		"productName":          req.ProductName,
		"price":                strconv.FormatFloat(req.Price, 'f', -1, 64),
		"description":          req.Description,
		"stock":                strconv.Itoa(req.Stock),
		"subscriptionDuration": strconv.Itoa(req.SubscriptionDuration),
		"category":             req.Category,
		"productCode":          req.ProductCode,
	}
}
