package handler

import (
	"feedback-builder/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the /api routes on app.
func RegisterRoutes(app *fiber.App, forms *FeedbackFormHandler, builder *BuilderHandler, vm *middleware.ValidationMiddleware) {
	api := app.Group("/api")

	api.Get("/categories", forms.GetCategories)
	api.Get("/feedback-forms/:id", forms.GetFeedbackForm)
	api.Post("/feedback-forms", forms.CreateFeedbackForm)
	api.Put("/feedback-forms/:id", forms.UpdateFeedbackForm)

	api.Post("/builder/sessions", builder.OpenSession)

	session := api.Group("/builder/sessions/:sid", vm.ValidateSessionID())
	session.Get("", builder.GetSession)
	session.Delete("", builder.DiscardSession)
	session.Patch("/details", builder.UpdateDetails)
	session.Put("/selection", builder.ApplySelection)
	session.Post("/submit", builder.Submit)

	questions := session.Group("/categories/:cid/questions")
	questions.Post("", builder.AddQuestion)
	questions.Patch("/:qidx", vm.ValidateIndexes("qidx"), builder.SetQuestionField)
	questions.Delete("/:qidx", vm.ValidateIndexes("qidx"), builder.RemoveQuestion)
	questions.Post("/:qidx/options", vm.ValidateIndexes("qidx"), builder.AddOption)
	questions.Put("/:qidx/options/:oidx", vm.ValidateIndexes("qidx", "oidx"), builder.SetOption)
	questions.Delete("/:qidx/options/:oidx", vm.ValidateIndexes("qidx", "oidx"), builder.RemoveOption)
}
