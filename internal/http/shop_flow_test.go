package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	html "github.com/gofiber/template/html/v2"

	"luxeshop/internal/config"
	"luxeshop/internal/domain"
	"luxeshop/internal/http/handlers"
	"luxeshop/internal/repos"
	"luxeshop/internal/services"
)

func newShopApp(t *testing.T) (*fiber.App, *handlers.Deps) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	state, err := repos.OpenState("")
	if err != nil {
		t.Fatalf("open state: %v", err)
	}
	t.Cleanup(func() { state.Close() })

	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))

	deps := handlers.NewDeps(db, state, config.Config{}, authSvc)

	app.Get("/", deps.ShopHandler.Home)
	app.Get("/shop", deps.ShopHandler.Shop)
	app.Get("/product/:id", deps.ProductHandler.Detail)
	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/qty", deps.CartHandler.UpdateQuantity)
	app.Get("/checkout", deps.CheckoutHandler.Form)
	app.Post("/checkout", deps.CheckoutHandler.Place)
	app.Get("/order/:id", deps.CheckoutHandler.Confirmation)

	return app, deps
}

func csrfToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/shop", nil))
	if err != nil {
		t.Fatal(err)
	}
	tok := extractCookie(resp, "csrf_")
	if tok == "" {
		t.Fatal("csrf token missing")
	}
	return tok
}

func postForm(t *testing.T, app *fiber.App, path, tok string, form url.Values) *http.Response {
	t.Helper()
	form.Set("csrf", tok)
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: tok})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestCartAddUnknownProduct404(t *testing.T) {
	app, _ := newShopApp(t)
	tok := csrfToken(t, app)

	resp := postForm(t, app, "/cart", tok, url.Values{"productId": {"no-such-product"}})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestShopSearchRejectsBadQuery(t *testing.T) {
	app, _ := newShopApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/shop?q=%3Cscript%3E", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad query, got %d", resp.StatusCode)
	}
}

func TestProductDetailUnknownID404(t *testing.T) {
	app, _ := newShopApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/product/definitely-not-here", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestCheckoutFlowEndToEnd(t *testing.T) {
	app, deps := newShopApp(t)
	tok := csrfToken(t, app)

	p := deps.Catalog.AddProduct(domain.Product{Name: "Test Lamp", Price: 100, Category: "Home", Stock: 3})

	// add to cart
	resp := postForm(t, app, "/cart", tok, url.Values{"productId": {p.ID}})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect on add, got %d", resp.StatusCode)
	}

	// invalid form re-renders with 400, cart stays
	resp = postForm(t, app, "/checkout", tok, url.Values{"firstName": {"Ama"}})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid form, got %d", resp.StatusCode)
	}
	if len(deps.Cart.Items()) != 1 {
		t.Fatal("cart should survive a failed checkout")
	}

	// the re-rendered form must carry the token so a corrected
	// resubmission still passes the csrf check
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `name="csrf" value="`+tok+`"`) {
		t.Fatal("re-rendered checkout form lost the csrf token")
	}

	// valid form places the order and clears the cart
	resp = postForm(t, app, "/checkout", tok, url.Values{
		"firstName": {"Ama"}, "lastName": {"Mensah"},
		"email": {"ama@luxeshop.test"},
		"address": {"12 Ring Road"}, "city": {"Accra"}, "zip": {"00233"},
	})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect on success, got %d", resp.StatusCode)
	}
	loc := resp.Header.Get("Location")
	if !strings.HasPrefix(loc, "/order/") {
		t.Fatalf("expected order confirmation redirect, got %q", loc)
	}
	if len(deps.Cart.Items()) != 0 {
		t.Fatal("cart should be empty after checkout")
	}

	orders := deps.Orders.Orders()
	if len(orders) != 1 {
		t.Fatalf("expected one order, got %d", len(orders))
	}
	if orders[0].TotalAmount != 110.00 {
		t.Fatalf("expected 110.00 total, got %.2f", orders[0].TotalAmount)
	}

	// confirmation page renders
	respConf, err := app.Test(httptest.NewRequest("GET", loc, nil))
	if err != nil {
		t.Fatal(err)
	}
	if respConf.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 confirmation, got %d", respConf.StatusCode)
	}

	// one unread admin notification for the new order
	if deps.Notifications.UnreadCount() != 1 {
		t.Fatalf("expected 1 unread notification, got %d", deps.Notifications.UnreadCount())
	}
}

func TestCheckoutEmptyCartRedirectsBack(t *testing.T) {
	app, _ := newShopApp(t)
	tok := csrfToken(t, app)

	resp := postForm(t, app, "/checkout", tok, url.Values{
		"firstName": {"Ama"}, "lastName": {"Mensah"},
		"email": {"ama@luxeshop.test"},
		"address": {"12 Ring Road"}, "city": {"Accra"}, "zip": {"00233"},
	})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/cart" {
		t.Fatalf("expected /cart redirect, got %q", loc)
	}
}
