package api

import (
	"github.com/mercato-app/homefeed/app/analytics"
	"github.com/mercato-app/homefeed/app/database"
	"github.com/mercato-app/homefeed/app/directive"
	"github.com/mercato-app/homefeed/app/feed"
	"github.com/mercato-app/homefeed/app/store"
	"github.com/mercato-app/homefeed/app/tasks"
)

type Handler struct {
	service    *feed.Service
	tiles      *feed.TileCache
	directives *directive.Handler
	applier    *directive.Applier
	analytics  *analytics.Logger
	priorities store.PriorityStore
	events     database.EventRepository
	scheduler  tasks.TaskSchedulerInterface
}
