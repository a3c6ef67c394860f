package handlers

import (
	"github.com/jmoiron/sqlx"

	"luxeshop/internal/config"
	"luxeshop/internal/domain"
	"luxeshop/internal/repos"
	"luxeshop/internal/services"
	"luxeshop/internal/stores"
)

type Deps struct {
	ShopHandler     *ShopHandler
	ProductHandler  *ProductHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
	ThemeHandler    *ThemeHandler
	AdminHandler    *AdminHandler

	Catalog       *stores.CatalogStore
	Cart          *stores.CartStore
	Orders        *stores.OrderStore
	Notifications *stores.NotificationStore
	Theme         *stores.ThemeStore
}

// NewDeps constructs every store once and threads them through the
// handlers; nothing here is a package-level singleton.
func NewDeps(db *sqlx.DB, state *repos.StateDB, cfg config.Config, auth *services.AuthService) *Deps {
	docs := repos.NewDocStore(db)

	notifs := stores.NewNotificationStore(state)
	catalog := stores.NewCatalogStore(state, docs)
	orders := stores.NewOrderStore(state, docs, func(n domain.Notification) { notifs.Add(n) })
	cart := stores.NewCartStore(state)
	theme := stores.NewThemeStore(state)

	checkout := services.NewCheckoutService(cart, orders)

	return &Deps{
		ShopHandler:     &ShopHandler{Catalog: catalog, Theme: theme, Cart: cart},
		ProductHandler:  &ProductHandler{Catalog: catalog, Theme: theme, Cart: cart},
		CartHandler:     &CartHandler{Cart: cart, Catalog: catalog, Theme: theme},
		CheckoutHandler: &CheckoutHandler{Checkout: checkout, Cart: cart, Orders: orders, Theme: theme},
		ThemeHandler:    &ThemeHandler{Theme: theme},
		AdminHandler: &AdminHandler{
			Catalog:       catalog,
			Orders:        orders,
			Notifications: notifs,
		},

		Catalog:       catalog,
		Cart:          cart,
		Orders:        orders,
		Notifications: notifs,
		Theme:         theme,
	}
}
