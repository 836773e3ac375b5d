package qaplatform

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	// Регистрация swagger-спецификации.
	_ "github.com/magabrotheeeer/qa-platform/docs"
	"github.com/magabrotheeeer/qa-platform/internal/http/handlers/ads"
	"github.com/magabrotheeeer/qa-platform/internal/http/handlers/bookmark"
	"github.com/magabrotheeeer/qa-platform/internal/http/handlers/calculator"
	"github.com/magabrotheeeer/qa-platform/internal/http/handlers/education"
	"github.com/magabrotheeeer/qa-platform/internal/http/handlers/mentor"
	"github.com/magabrotheeeer/qa-platform/internal/http/handlers/moderation"
	"github.com/magabrotheeeer/qa-platform/internal/http/handlers/payment"
	"github.com/magabrotheeeer/qa-platform/internal/http/handlers/question"
	"github.com/magabrotheeeer/qa-platform/internal/http/handlers/report"
	"github.com/magabrotheeeer/qa-platform/internal/http/handlers/subscription"
	"github.com/magabrotheeeer/qa-platform/internal/http/handlers/support"
	"github.com/magabrotheeeer/qa-platform/internal/http/handlers/template"
	"github.com/magabrotheeeer/qa-platform/internal/http/handlers/user"
	"github.com/magabrotheeeer/qa-platform/internal/http/middlewarectx"
	"github.com/magabrotheeeer/qa-platform/internal/http/response"
	"github.com/magabrotheeeer/qa-platform/internal/lib/metrics"
	"github.com/magabrotheeeer/qa-platform/internal/lib/sl"
	"github.com/magabrotheeeer/qa-platform/internal/models"
)

const envProd = "prod"

// Pinger проверка доступности хранилища для /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterConfig параметры маршрутизатора.
type RouterConfig struct {
	Logger         *slog.Logger
	Tokens         middlewarectx.TokenParser
	CookieName     string
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
	UploadsDir     string
	UploadsPrefix  string
	Health         Pinger
}

// Handlers обработчики всех разделов API.
type Handlers struct {
	User         *user.Handler
	Question     *question.Handler
	Moderation   *moderation.Handler
	Bookmark     *bookmark.Handler
	Education    *education.Handler
	Report       *report.Handler
	Ads          *ads.Handler
	Mentor       *mentor.Handler
	Calculator   *calculator.Handler
	Template     *template.Handler
	Subscription *subscription.Handler
	Support      *support.Handler
	Payment      *payment.Handler
}

// NewRouter регистрирует все маршруты приложения.
func NewRouter(cfg RouterConfig, h Handlers) chi.Router {
	logger := cfg.Logger
	r := chi.NewRouter()

	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Stripe-Signature"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
		metrics.Middleware,
	)

	auth := middlewarectx.JWTMiddleware(cfg.Tokens, logger, cfg.CookieName)
	adminOnly := middlewarectx.RequireRole(logger, models.UserTypeAdmin)
	limiter := middlewarectx.RateLimitMiddleware(middlewarectx.NewIPLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst), logger)

	r.Route("/api", func(r chi.Router) {
		r.Use(limiter)

		r.Route("/user", func(r chi.Router) {
			r.Post("/signup", h.User.Signup)
			r.Post("/login", h.User.Login)
			r.Post("/logout", h.User.Logout)
			r.With(auth).Get("/getProfile", h.User.Profile)
		})

		r.Route("/question", func(r chi.Router) {
			r.Use(auth)
			r.Post("/addQuestion", h.Question.Add)
			r.With(adminOnly).Get("/getQuestionAdmin", h.Question.ListAdmin)
			r.Patch("/updateQuestion/{id}", h.Question.Update)
			r.Post("/deleteQuestion/{id}", h.Question.Delete)
			r.Post("/addQuestionsViews", h.Question.AddView)
			r.Post("/addQuestionLikes", h.Question.AddLike)
			r.Get("/getQuestionLikes", h.Question.Likes)
			r.Post("/removeQuestionLikes", h.Question.RemoveLike)
			r.Post("/addQuestionComments", h.Question.AddComment)
			r.Post("/deleteComment/{commentId}", h.Question.DeleteComment)
			r.Get("/getQuestionComments", h.Question.Comments)
			r.Post("/addCommentsLike", h.Question.AddCommentLike)
			r.Get("/getCommentLikes", h.Question.CommentLikes)
			r.Post("/removeCommentLike", h.Question.RemoveCommentLike)
			r.Get("/getCurrentUserPostedQuestions", h.Question.ListPosted)
			r.Get("/get-my-questions", h.Question.ListMine)
		})

		r.Route("/questions", func(r chi.Router) {
			r.Use(auth)
			r.Get("/get-approved-questions", h.Moderation.Approved)
			r.Get("/get-rejected-questions", h.Moderation.Rejected)
			r.Get("/get-notifications", h.Moderation.Notifications)
			r.Group(func(r chi.Router) {
				r.Use(adminOnly)
				r.Patch("/approve/{questionId}", h.Moderation.Approve)
				r.Get("/get-pending-questions", h.Moderation.Pending)
				r.Post("/reject-question/{questionId}", h.Moderation.Reject)
			})
		})

		r.Route("/bookmark", func(r chi.Router) {
			r.Use(auth)
			r.Post("/addBookmarkQuestions", h.Bookmark.AddQuestion)
			r.Get("/getbookmarkQuestions", h.Bookmark.ListQuestions)
			r.Delete("/deletebookmarkQuestion/{questionId}", h.Bookmark.RemoveQuestion)
			r.Post("/addBookmarkEducationContent", h.Bookmark.AddContent)
			r.Get("/getBookmarkEducationContent", h.Bookmark.ListContent)
			r.Post("/removeBookmarkEducationContent/{educationContentId}", h.Bookmark.RemoveContent)
		})

		r.Route("/education", func(r chi.Router) {
			r.Use(auth)
			r.Get("/getEducationResources", h.Education.List)
			r.With(adminOnly).Post("/addEducationResource", h.Education.Add)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Use(auth)
			r.Post("/addReportComment", h.Report.Add)
			r.With(adminOnly).Get("/getReportedComment", h.Report.List)
		})

		r.Route("/ads", func(r chi.Router) {
			r.Use(auth)
			r.Get("/getAds", h.Ads.List)
			r.Group(func(r chi.Router) {
				r.Use(adminOnly)
				r.Post("/addAds", h.Ads.Add)
				r.Patch("/updateAds/{id}", h.Ads.Update)
				r.Delete("/deleteAds/{id}", h.Ads.Delete)
			})
		})

		r.Route("/mentor", func(r chi.Router) {
			r.Use(auth)
			r.Get("/get-unhide-mentor-program", h.Mentor.ListVisible)
			r.Group(func(r chi.Router) {
				r.Use(adminOnly)
				r.Post("/add-mentor-program", h.Mentor.Add)
				r.Get("/get-mentor-programs", h.Mentor.List)
				r.Put("/update-mentor-program", h.Mentor.Update)
				r.Post("/delete-mentor-program/{id}", h.Mentor.Delete)
				r.Patch("/mentor-program-hide-unhide/{id}", h.Mentor.ToggleHidden)
			})
		})

		r.Route("/calculator", func(r chi.Router) {
			r.Use(auth)
			r.Get("/get-unhide-calculator", h.Calculator.ListVisible)
			r.Group(func(r chi.Router) {
				r.Use(adminOnly)
				r.Post("/add-calculator", h.Calculator.Add)
				r.Get("/get-calculators", h.Calculator.List)
				r.Put("/update-calculator/{id}", h.Calculator.Update)
				r.Post("/delete-calculator/{id}", h.Calculator.Delete)
				r.Patch("/hide-and-unhide/{id}", h.Calculator.ToggleHidden)
				r.Post("/coming-soon/{id}", h.Calculator.ToggleComingSoon)
			})
		})

		r.Route("/template", func(r chi.Router) {
			r.Use(auth)
			r.Get("/get-temp-pdf", h.Template.List)
			r.Group(func(r chi.Router) {
				r.Use(adminOnly)
				r.Post("/upload-temp-pdf", h.Template.Upload)
				r.Put("/update-temp-pdf", h.Template.Update)
				r.Post("/delete-temp-pdf/{id}", h.Template.Delete)
			})
		})

		r.Route("/userSubscription", func(r chi.Router) {
			r.Use(auth, adminOnly)
			r.Patch("/subscriptions/{id}", h.Subscription.Update)
			r.Get("/get-subscriptionsUsers", h.Subscription.List)
		})

		r.Route("/support", func(r chi.Router) {
			r.Use(auth)
			r.Post("/add-inquiry", h.Support.AddInquiry)
			r.With(adminOnly).Get("/get-inquiries", h.Support.Inquiries)
			r.Post("/reply-inquiry/{inquiryId}", h.Support.Reply)
			r.Get("/get-replies/{inquiryId}", h.Support.Replies)
			r.Patch("/notification/{notificationId}", h.Support.MarkRead)
			r.Get("/notifications", h.Support.Notifications)
		})

		r.Route("/payments", func(r chi.Router) {
			// Вебхук без аутентификации, подпись проверяет сервис.
			r.Post("/webhook", h.Payment.Webhook)
			r.Group(func(r chi.Router) {
				r.Use(auth)
				r.Post("/payment-intent", h.Payment.CreateIntent)
				r.Post("/confirm-payment", h.Payment.Confirm)
				r.Get("/check-payment-status", h.Payment.Status)
				r.Get("/history", h.Payment.History)
			})
		})
	})

	if cfg.UploadsDir != "" {
		prefix := "/" + strings.Trim(cfg.UploadsPrefix, "/")
		fs := http.StripPrefix(prefix, http.FileServer(http.Dir(cfg.UploadsDir)))
		r.Get(prefix+"/*", fs.ServeHTTP)
	}

	r.Get("/health", healthHandler(cfg.Health, logger))
	r.Handle("/metrics", metrics.Handler())
	r.Get("/docs/*", httpSwagger.WrapHandler)

	return r
}

func healthHandler(db Pinger, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				logger.Error("health check failed", sl.Err(err))
				response.Fail(w, r, http.StatusServiceUnavailable, "database unavailable")
				return
			}
		}
		response.OK(w, r, http.StatusOK, "ok", nil)
	}
}
