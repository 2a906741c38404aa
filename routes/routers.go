package routes

import (
	"stayhub/constants"
	"stayhub/controllers"
	middlewares "stayhub/middleware"
	"stayhub/services"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
)

func SetupRoutes(router *gin.Engine, facade *services.BookingFacade, products *services.ProductService, orders *services.OrderService, carts *services.CartService, redisCli *redis.Client, m *melody.Melody) {

	router.Use(middlewares.ErrorHandler())

	store := facade.Store()
	authController := controllers.NewAuthController(services.NewAuthService(store), store, redisCli)
	guestController := controllers.NewGuestController(store)
	roomController := controllers.NewRoomController(facade)
	reservationController := controllers.NewReservationController(facade)
	bookingController := controllers.NewBookingController(facade)
	statsController := controllers.NewStatsController(store, redisCli)
	productController := controllers.NewProductController(products)
	cartController := controllers.NewCartController(carts, products)
	orderController := controllers.NewOrderController(orders, carts)

	admin := constants.RoleAdmin
	user := constants.RoleUser

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", authController.Login)
	v1.POST("/auth/register", authController.Register)
	v1.DELETE("/auth/logout", middlewares.AuthMiddleware(user, admin), authController.Logout)
	v1.GET("/profile", middlewares.AuthMiddleware(user, admin), authController.GetProfile)

	v1.GET("/guests", middlewares.AuthMiddleware(admin), guestController.GetGuests)
	v1.GET("/guests/:id", middlewares.AuthMiddleware(admin), guestController.GetGuestByID)
	v1.POST("/guests", middlewares.AuthMiddleware(admin), guestController.CreateGuest)

	v1.GET("/rooms", roomController.GetRooms)
	v1.GET("/rooms/:id", roomController.GetRoomByID)
	v1.GET("/roomsAvailable", roomController.GetAvailableRooms)
	v1.POST("/rooms", middlewares.AuthMiddleware(admin), roomController.CreateRoom)
	v1.PUT("/roomUpdate", middlewares.AuthMiddleware(admin), roomController.UpdateRoom)
	v1.PUT("/roomStatus", middlewares.AuthMiddleware(admin), roomController.UpdateRoomStatus)
	v1.DELETE("/rooms/:id", middlewares.AuthMiddleware(admin), roomController.DeleteRoom)

	v1.GET("/reservations", middlewares.AuthMiddleware(admin), reservationController.GetReservations)
	v1.GET("/reservations/:id", middlewares.AuthMiddleware(admin), reservationController.GetReservationByID)
	v1.POST("/reservations", middlewares.AuthMiddleware(admin), reservationController.CreateReservation)
	v1.PUT("/reservationStatus", middlewares.AuthMiddleware(admin), reservationController.UpdateReservationStatus)
	v1.POST("/sendpay", middlewares.AuthMiddleware(admin), reservationController.RecordPayment)
	v1.GET("/reservations/:id/payments", middlewares.AuthMiddleware(admin), reservationController.GetReservationPayments)

	v1.POST("/bookings", middlewares.AuthMiddleware(user, admin), bookingController.BookRoom)
	v1.DELETE("/bookings/:id", middlewares.AuthMiddleware(user, admin), bookingController.CancelBooking)
	v1.GET("/bookingHistory", middlewares.AuthMiddleware(user, admin), bookingController.GetBookingHistory)
	v1.GET("/quote", bookingController.GetQuote)

	v1.GET("/stats", statsController.GetDashboardStats)

	v1.GET("/products", productController.GetProducts)
	v1.GET("/productsFeatured", productController.GetFeaturedProducts)
	v1.GET("/products/:id", productController.GetProductByID)
	v1.POST("/products", middlewares.AuthMiddleware(admin), productController.CreateProduct)
	v1.PUT("/productUpdate", middlewares.AuthMiddleware(admin), productController.UpdateProduct)
	v1.DELETE("/products/:id", middlewares.AuthMiddleware(admin), productController.DeleteProduct)

	v1.GET("/cart", middlewares.AuthMiddleware(user, admin), cartController.GetCart)
	v1.POST("/cart", middlewares.AuthMiddleware(user, admin), cartController.AddToCart)
	v1.PUT("/cart", middlewares.AuthMiddleware(user, admin), cartController.UpdateCartItem)
	v1.DELETE("/cart/:productId", middlewares.AuthMiddleware(user, admin), cartController.RemoveFromCart)
	v1.DELETE("/cart", middlewares.AuthMiddleware(user, admin), cartController.ClearCart)

	v1.POST("/order", middlewares.AuthMiddleware(user, admin), orderController.CreateOrder)
	v1.GET("/order/:id", middlewares.AuthMiddleware(user, admin), orderController.GetOrderByID)
	v1.GET("/orderHistory", middlewares.AuthMiddleware(user, admin), orderController.GetOrderHistory)
	v1.GET("/order", middlewares.AuthMiddleware(admin), orderController.GetAllOrders)
	v1.PUT("/orderUpdate", middlewares.AuthMiddleware(admin), orderController.UpdateOrderStatus)
}
