// controllers/product_controller.go
package controllers

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vinshop/admin_console/forms"
	"github.com/vinshop/admin_console/middleware"
	"github.com/vinshop/admin_console/models"
	"github.com/vinshop/admin_console/store"
)

// ProductController serves the admin product pages, including the multipart
// image pass-through.
type ProductController struct {
	stores *store.Manager
	forms  *forms.Validator
}

func NewProductController(stores *store.Manager, validator *forms.Validator) *ProductController {
	return &ProductController{stores: stores, forms: validator}
}

// List renders the product table with the within-page q filter.
func (pc *ProductController) List(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	products := pc.stores.For(session.UserID).Products

	if err := products.List(c.Request().Context(), session.Token, pageRequest(c)); err != nil {
		c.Logger().Errorf("product list failed: %v", err)
	}
	state := products.State()

	items := state.Items
	if q := c.QueryParam("q"); q != "" {
		filtered := make([]models.Product, 0, len(items))
		for _, p := range items {
			if containsFold(p.ProductName, q) || containsFold(p.ProductCode, q) || containsFold(p.Category, q) {
				filtered = append(filtered, p)
			}
		}
		items = filtered
	}

	data := newPageData(c)
	data["Products"] = items
	data["Query"] = c.QueryParam("q")
	data["Meta"] = listMeta(state)
	if state.LastError != nil {
		data["Error"] = state.LastError.Message
	}
	return c.Render(http.StatusOK, "products_list", data)
}

// NewPage renders the empty product form with the category dropdown.
func (pc *ProductController) NewPage(c echo.Context) error {
	return c.Render(http.StatusOK, "product_form", pc.formData(c))
}

// Create handles the product form post. The image part, when present, is
// forwarded untouched with its original filename.
func (pc *ProductController) Create(c echo.Context) error {
	session := middleware.SessionFromContext(c)

	var req models.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return redirectWithError(c, "/admin/products/new", err)
	}

	if errs := pc.forms.Check(req); errs.HasErrors() {
		data := pc.formData(c)
		data["FieldErrors"] = errs
		data["Form"] = req
		return c.Render(http.StatusOK, "product_form", data)
	}

	imageName, image, closeImage, err := formImage(c)
	if err != nil {
		return redirectWithError(c, "/admin/products/new", err)
	}
	defer closeImage()

	if _, err := pc.stores.For(session.UserID).Products.Create(c.Request().Context(), session.Token, req, imageName, image); err != nil {
		return redirectWithError(c, "/admin/products", err)
	}
	return redirectWithToast(c, "/admin/products", "Đã tạo sản phẩm")
}

// EditPage renders the update form for one product.
func (pc *ProductController) EditPage(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	id := c.Param("id")

	for _, p := range pc.stores.For(session.UserID).Products.State().Items {
		if p.ID == id {
			data := pc.formData(c)
			data["Product"] = p
			return c.Render(http.StatusOK, "product_form", data)
		}
	}
	return redirectWithError(c, "/admin/products", &models.APIError{Code: 0, Message: "Không tìm thấy sản phẩm"})
}

// Update handles the product update post.
func (pc *ProductController) Update(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	id := c.Param("id")

	var req models.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return redirectWithError(c, "/admin/products", err)
	}

	if errs := pc.forms.Check(req); errs.HasErrors() {
		data := pc.formData(c)
		data["FieldErrors"] = errs
		data["Form"] = req
		return c.Render(http.StatusOK, "product_form", data)
	}

	imageName, image, closeImage, err := formImage(c)
	if err != nil {
		return redirectWithError(c, "/admin/products", err)
	}
	defer closeImage()

	if _, err := pc.stores.For(session.UserID).Products.Update(c.Request().Context(), session.Token, id, req, imageName, image); err != nil {
		return redirectWithError(c, "/admin/products", err)
	}
	return redirectWithToast(c, "/admin/products", "Đã cập nhật sản phẩm")
}

// Delete removes one product.
func (pc *ProductController) Delete(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if err := pc.stores.For(session.UserID).Products.Delete(c.Request().Context(), session.Token, c.Param("id")); err != nil {
		return redirectWithError(c, "/admin/products", err)
	}
	return redirectWithToast(c, "/admin/products", "Đã xóa sản phẩm")
}

// DeleteMany removes the checked rows.
func (pc *ProductController) DeleteMany(c echo.Context) error {
	session := middleware.SessionFromContext(c)

	var req models.DeleteManyRequest
	if err := c.Bind(&req); err != nil {
		return redirectWithError(c, "/admin/products", err)
	}
	if errs := pc.forms.Check(req); errs.HasErrors() {
		return redirectWithError(c, "/admin/products", &models.APIError{Code: 0, Message: "Chưa chọn dòng nào"})
	}

	if err := pc.stores.For(session.UserID).Products.DeleteMany(c.Request().Context(), session.Token, req.IDs); err != nil {
		return redirectWithError(c, "/admin/products", err)
	}
	return redirectWithToast(c, "/admin/products", "Đã xóa các sản phẩm đã chọn")
}

// formData seeds the product form with the loaded category names for the
// dropdown.
func (pc *ProductController) formData(c echo.Context) PageData {
	session := middleware.SessionFromContext(c)
	data := newPageData(c)

	categories := pc.stores.For(session.UserID).Categories
	if len(categories.State().Items) == 0 {
		if err := categories.List(c.Request().Context(), session.Token, models.PageRequest{Page: 0, Size: 1000}); err != nil {
			c.Logger().Warnf("category load for product form failed: %v", err)
		}
	}
	data["Categories"] = categories.State().Items
	return data
}

// formImage extracts the optional image part of the product form.
func formImage(c echo.Context) (string, io.Reader, func(), error) {
	file, err := c.FormFile("image")
	if err != nil {
		// No image part is fine.
		return "", nil, func() {}, nil
	}
	src, err := file.Open()
	if err != nil {
		return "", nil, func() {}, err
	}
	return file.Filename, src, func() { src.Close() }, nil
}
