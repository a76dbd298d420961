package handler

import (
	"net/http"

	"github.com/vfg2006/commerce-admin-api/internal/api/handler/router"
	"github.com/vfg2006/commerce-admin-api/internal/usecases/authenticating"
	"github.com/vfg2006/commerce-admin-api/internal/usecases/cataloging"
	"github.com/vfg2006/commerce-admin-api/internal/usecases/checkout"
	"github.com/vfg2006/commerce-admin-api/internal/usecases/reporting"
	"github.com/vfg2006/commerce-admin-api/internal/usecases/store"
	"github.com/vfg2006/commerce-admin-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Stores(service store.StoreManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores",
			Method:      http.MethodPost,
			Handler:     CreateStore(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores",
			Method:      http.MethodGet,
			Handler:     ListStores(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:storeId",
			Method:      http.MethodGet,
			Handler:     GetStore(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:storeId",
			Method:      http.MethodPatch,
			Handler:     UpdateStore(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:storeId",
			Method:      http.MethodDelete,
			Handler:     DeleteStore(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Billboards(service cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores/:storeId/billboards",
			Method:      http.MethodPost,
			Handler:     CreateBillboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:storeId/billboards",
			Method:      http.MethodGet,
			Handler:     ListBillboards(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:storeId/billboards/:billboardId",
			Method:      http.MethodGet,
			Handler:     GetBillboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:storeId/billboards/:billboardId",
			Method:      http.MethodPatch,
			Handler:     UpdateBillboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:storeId/billboards/:billboardId",
			Method:      http.MethodDelete,
			Handler:     DeleteBillboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Categories(service cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores/:storeId/categories",
			Method:      http.MethodPost,
			Handler:     CreateCategory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:storeId/categories",
			Method:      http.MethodGet,
			Handler:     ListCategories(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:storeId/categories/:categoryId",
			Method:      http.MethodGet,
			Handler:     GetCategory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:storeId/categories/:categoryId",
			Method:      http.MethodPatch,
			Handler:     UpdateCategory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:storeId/categories/:categoryId",
			Method:      http.MethodDelete,
			Handler:     DeleteCategory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Sizes(service cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores/:storeId/sizes",
			Method:      http.MethodPost,
			Handler:     CreateSize(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:storeId/sizes",
			Method:      http.MethodGet,
			Handler:     ListSizes(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:storeId/sizes/:sizeId",
			Method:      http.MethodGet,
			Handler:     GetSize(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:storeId/sizes/:sizeId",
			Method:      http.MethodPatch,
			Handler:     UpdateSize(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:storeId/sizes/:sizeId",
			Method:      http.MethodDelete,
			Handler:     DeleteSize(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Colors(service cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores/:storeId/colors",
			Method:      http.MethodPost,
			Handler:     CreateColor(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:storeId/colors",
			Method:      http.MethodGet,
			Handler:     ListColors(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:storeId/colors/:colorId",
			Method:      http.MethodGet,
			Handler:     GetColor(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:storeId/colors/:colorId",
			Method:      http.MethodPatch,
			Handler:     UpdateColor(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:storeId/colors/:colorId",
			Method:      http.MethodDelete,
			Handler:     DeleteColor(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Products(service cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores/:storeId/products",
			Method:      http.MethodPost,
			Handler:     CreateProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:storeId/products",
			Method:      http.MethodGet,
			Handler:     ListProducts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:storeId/products/:productId",
			Method:      http.MethodGet,
			Handler:     GetProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:storeId/products/:productId",
			Method:      http.MethodPatch,
			Handler:     UpdateProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:storeId/products/:productId",
			Method:      http.MethodDelete,
			Handler:     DeleteProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Orders(service checkout.Checkouter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores/:storeId/orders",
			Method:      http.MethodGet,
			Handler:     ListOrders(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores/:storeId/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboardSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:storeId/dashboard/graph",
			Method:      http.MethodGet,
			Handler:     GetGraphRevenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:storeId/dashboard/monthly",
			Method:      http.MethodGet,
			Handler:     ListMonthlyRevenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:storeId/dashboard/monthly/:period",
			Method:      http.MethodGet,
			Handler:     GetMonthlyRevenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Checkout e webhook são rotas públicas, fora da sessão do painel
func Checkout(service checkout.Checkouter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stores/:storeId/checkout",
			Method:  http.MethodPost,
			Handler: CreateCheckoutSession(service),
		},
		{
			Path:    "/v1/webhook/stripe",
			Method:  http.MethodPost,
			Handler: PaymentWebhook(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
