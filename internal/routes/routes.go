package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/fastroom/reservasi_backend/internal/config"
	"github.com/fastroom/reservasi_backend/internal/controllers"
	"github.com/fastroom/reservasi_backend/internal/metrics"
	"github.com/fastroom/reservasi_backend/internal/middleware"
	"github.com/fastroom/reservasi_backend/internal/storage"
)

// Register wires middleware and the full route table onto the engine. The
// route paths mirror the deployed frontend's expectations, including the
// dash/underscore split between /reservasi_room and /reservasi-room.
func Register(r *gin.Engine, db *gorm.DB, cfg *config.Config, images, documents *storage.DiskStore) {
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(metrics.GinMiddleware())
	r.Use(middleware.RateLimit(rate.Every(time.Second/20), 40))

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	roomCtrl := &controllers.RoomController{DB: db, Images: images}
	resvCtrl := &controllers.ReservationController{DB: db, Documents: documents}
	authCtrl := &controllers.AuthController{DB: db}

	r.POST("/room", roomCtrl.CreateRoom)
	r.GET("/rooms", roomCtrl.ListRooms)
	r.GET("/room/:id", roomCtrl.GetRoom)

	r.POST("/reservasi_room", resvCtrl.CreateReservation)
	r.GET("/reservasi_rooms", resvCtrl.ListReservations)
	r.GET("/reservasi-room", resvCtrl.ListUpcoming)
	r.GET("/reservasi-room/today", resvCtrl.ListToday)
	r.GET("/api/history/:nim", resvCtrl.HistoryByNim)

	r.POST("/register", authCtrl.Register)
	r.POST("/login", authCtrl.Login)

	// Stored images and request letters are served back to clients here.
	r.Static("/uploads", "./uploads")
}
