package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"luxeshop/internal/domain"
	applog "luxeshop/internal/log"
	"luxeshop/internal/stores"
	"luxeshop/internal/validate"
)

var formValidate = validator.New()

// ProductForm carries the admin form payload; the store itself trusts
// its callers, so every field check happens here.
type ProductForm struct {
	Name        string  `validate:"required,max=80"`
	Price       float64 `validate:"required,gt=0"`
	Category    string  `validate:"required,max=40"`
	Description string  `validate:"max=500"`
	Image       string  `validate:"omitempty,url"`
	Stock       int     `validate:"gte=0"`
}

// GET /admin/products
func (h *AdminHandler) ProductsPage(c *fiber.Ctx) error {
	return render(c, "admin_products", fiber.Map{
		"Products":    h.Catalog.Products(),
		"Categories":  h.Catalog.Categories(),
		"UnreadCount": h.Notifications.UnreadCount(),
	})
}

// POST /admin/products
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	form, err := parseProductForm(c)
	if err != nil {
		applog.Security(c, "admin.products.validation.fail", map[string]any{"error": err.Error()})
		return c.Status(400).SendString("invalid product fields")
	}
	p := h.Catalog.AddProduct(domain.Product{
		Name:        form.Name,
		Price:       form.Price,
		Category:    form.Category,
		Description: form.Description,
		Image:       form.Image,
		Stock:       form.Stock,
	})
	applog.Audit(c, "admin.products.create", map[string]any{"product_id": p.ID})
	return c.Redirect("/admin/products")
}

// POST /admin/products/:id
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}

	// Only submitted fields make it into the update.
	var u stores.ProductUpdate
	if v := strings.TrimSpace(c.FormValue("name")); v != "" {
		if _, ok := validate.Name(v); !ok {
			return c.Status(400).SendString("invalid name")
		}
		u.Name = &v
	}
	if v := c.FormValue("price"); v != "" {
		price, ok := validate.Price(v)
		if !ok {
			return c.Status(400).SendString("price must be a positive number")
		}
		u.Price = &price
	}
	if v := strings.TrimSpace(c.FormValue("category")); v != "" {
		u.Category = &v
	}
	if v := c.FormValue("description"); v != "" {
		u.Description = &v
	}
	if v := strings.TrimSpace(c.FormValue("image")); v != "" {
		u.Image = &v
	}
	if v := c.FormValue("stock"); v != "" {
		stock, err := strconv.Atoi(v)
		if err != nil || stock < 0 {
			return c.Status(400).SendString("stock must be a non-negative integer")
		}
		u.Stock = &stock
	}

	if _, found := h.Catalog.UpdateProduct(id, u); !found {
		return c.Status(404).SendString("product not found")
	}
	applog.Audit(c, "admin.products.update", map[string]any{"product_id": id})
	return c.Redirect("/admin/products")
}

// POST /admin/products/:id/delete
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if !h.Catalog.DeleteProduct(id) {
		return c.Status(404).SendString("product not found")
	}
	applog.Audit(c, "admin.products.delete", map[string]any{"product_id": id})
	return c.Redirect("/admin/products")
}

// POST /admin/products/:id/stock
func (h *AdminHandler) UpdateStock(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	stock, err := strconv.Atoi(c.FormValue("stock"))
	if err != nil || stock < 0 {
		return c.Status(400).SendString("stock must be a non-negative integer")
	}
	if _, found := h.Catalog.UpdateStock(id, stock); !found {
		return c.Status(404).SendString("product not found")
	}
	applog.Audit(c, "admin.products.stock", map[string]any{"product_id": id, "stock": stock})
	return c.Redirect("/admin/products")
}

func parseProductForm(c *fiber.Ctx) (ProductForm, error) {
	price, _ := strconv.ParseFloat(c.FormValue("price"), 64)
	stock := 0
	if v := c.FormValue("stock"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return ProductForm{}, errors.New("stock must be an integer")
		}
		stock = n
	}
	form := ProductForm{
		Name:        strings.TrimSpace(c.FormValue("name")),
		Price:       price,
		Category:    strings.TrimSpace(c.FormValue("category")),
		Description: c.FormValue("description"),
		Image:       strings.TrimSpace(c.FormValue("image")),
		Stock:       stock,
	}
	if err := formValidate.Struct(form); err != nil {
		return ProductForm{}, err
	}
	return form, nil
}
