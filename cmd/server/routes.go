package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sakinah-tech/minbar/internal/db"
	"github.com/sakinah-tech/minbar/internal/http/api"
	authapi "github.com/sakinah-tech/minbar/internal/http/api/auth/endpoints"
	calendarapi "github.com/sakinah-tech/minbar/internal/http/api/calendar/endpoints"
	settingsapi "github.com/sakinah-tech/minbar/internal/http/api/settings/endpoints"
	tasbihapi "github.com/sakinah-tech/minbar/internal/http/api/tasbih/endpoints"
	trackerapi "github.com/sakinah-tech/minbar/internal/http/api/tracker/endpoints"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, env Environment, store db.Store) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
		Auth:   false,
	},
		authapi.AuthPublicModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api",
		Auth:      true,
		SecretKey: env.SecretKey,
		Store:     store,
	},
		authapi.AuthSessionModule(env.SecretKey, store),
		trackerapi.TrackerModule(store),
		calendarapi.CalendarModule(store),
		tasbihapi.TasbihModule(store),
		settingsapi.SettingsModule(store),
	)
}
