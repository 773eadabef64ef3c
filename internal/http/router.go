package http

import (
	"net/http"
	"strings"
	"time"

	"careerassign/internal/domain/user"
	"careerassign/internal/http/handlers"
	"careerassign/internal/http/metrics"
	httpmw "careerassign/internal/http/middleware"
)

type RouterDependencies struct {
	AuthHandler         *handlers.AuthHandler
	ProfileHandler      *handlers.ProfileHandler
	CatalogHandler      *handlers.CatalogHandler
	AdmissionHandler    *handlers.AdmissionHandler
	JobHandler          *handlers.JobHandler
	NotificationHandler *handlers.NotificationHandler
	MetricsHandler      *handlers.MetricsHandler
	AuthMiddleware      *httpmw.AuthMiddleware
	Metrics             *metrics.Collector
	RequestTimeout      time.Duration
}

type Router struct {
	deps RouterDependencies
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(), httpmw.RequestID, httpmw.Logging, httpmw.BodyLimit(maxBodyBytes), httpmw.Recover, httpmw.Metrics(r.deps.Metrics), httpmw.Timeout(r.deps.RequestTimeout))
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.MetricsHandler.Get(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/register":
			r.deps.AuthHandler.Register(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/login":
			r.deps.AuthHandler.Login(w, req)
			return
		case req.Method == http.MethodGet && path == "/courses":
			r.deps.CatalogHandler.ListPublishedCourses(w, req)
			return
		case req.Method == http.MethodGet && path == "/institutions":
			r.deps.CatalogHandler.ListInstitutions(w, req)
			return
		}

		if protectedPath(path) {
			protected := r.deps.AuthMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				r.handleProtected(w, req)
			}))
			protected.ServeHTTP(w, req)
			return
		}

		http.NotFound(w, req)
	})
}

func protectedPath(path string) bool {
	for _, prefix := range []string{"/candidates", "/companies", "/institutions", "/courses", "/admissions", "/jobs", "/job-applications", "/notifications"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (r *Router) handleProtected(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path
	candidate := httpmw.RequireRole(user.RoleCandidate)
	institute := httpmw.RequireRole(user.RoleInstitute)
	company := httpmw.RequireRole(user.RoleCompany)
	admin := httpmw.RequireRole(user.RoleAdmin)

	switch {
	case req.Method == http.MethodGet && path == "/candidates/profile":
		candidate(http.HandlerFunc(r.deps.ProfileHandler.GetCandidate)).ServeHTTP(w, req)
		return
	case (req.Method == http.MethodPost || req.Method == http.MethodPut) && path == "/candidates/profile":
		candidate(http.HandlerFunc(r.deps.ProfileHandler.UpsertCandidate)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/candidates/documents":
		candidate(http.HandlerFunc(r.deps.ProfileHandler.AddDocument)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/candidates/documents/"):
		candidate(http.HandlerFunc(r.deps.ProfileHandler.RemoveDocument)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/companies/profile":
		company(http.HandlerFunc(r.deps.ProfileHandler.GetCompany)).ServeHTTP(w, req)
		return
	case (req.Method == http.MethodPost || req.Method == http.MethodPut) && path == "/companies/profile":
		company(http.HandlerFunc(r.deps.ProfileHandler.UpsertCompany)).ServeHTTP(w, req)
		return

	case req.Method == http.MethodPost && path == "/institutions":
		institute(http.HandlerFunc(r.deps.CatalogHandler.CreateInstitution)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/institutions/mine":
		institute(http.HandlerFunc(r.deps.CatalogHandler.GetOwnInstitution)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPut && path == "/institutions/mine":
		institute(http.HandlerFunc(r.deps.CatalogHandler.UpdateOwnInstitution)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && path == "/institutions/mine":
		institute(http.HandlerFunc(r.deps.CatalogHandler.DeleteOwnInstitution)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/institutions/") && !strings.HasPrefix(path, "/institutions/mine"):
		admin(http.HandlerFunc(r.deps.CatalogHandler.AdminUpdateInstitution)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/institutions/") && !strings.HasPrefix(path, "/institutions/mine"):
		admin(http.HandlerFunc(r.deps.CatalogHandler.AdminDeleteInstitution)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/institutions/mine/faculties":
		institute(http.HandlerFunc(r.deps.CatalogHandler.CreateFaculty)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/institutions/mine/faculties":
		institute(http.HandlerFunc(r.deps.CatalogHandler.ListFaculties)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/institutions/mine/faculties/"):
		institute(http.HandlerFunc(r.deps.CatalogHandler.RenameFaculty)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/institutions/mine/faculties/"):
		institute(http.HandlerFunc(r.deps.CatalogHandler.DeleteFaculty)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/institutions/mine/courses":
		institute(http.HandlerFunc(r.deps.CatalogHandler.ListOwnCourses)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/institutions/mine/admissions":
		institute(http.HandlerFunc(r.deps.AdmissionHandler.ListForInstitution)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/institutions/mine/waitlist":
		institute(http.HandlerFunc(r.deps.AdmissionHandler.WaitingList)).ServeHTTP(w, req)
		return

	case req.Method == http.MethodPost && path == "/courses":
		institute(http.HandlerFunc(r.deps.CatalogHandler.CreateCourse)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/courses/") && strings.HasSuffix(path, "/publish"):
		institute(http.HandlerFunc(r.deps.CatalogHandler.PublishCourse)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/courses/"):
		institute(http.HandlerFunc(r.deps.CatalogHandler.UpdateCourse)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/courses/"):
		institute(http.HandlerFunc(r.deps.CatalogHandler.DeleteCourse)).ServeHTTP(w, req)
		return

	case req.Method == http.MethodPost && path == "/admissions":
		candidate(http.HandlerFunc(r.deps.AdmissionHandler.Apply)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/admissions":
		candidate(http.HandlerFunc(r.deps.AdmissionHandler.ListOwn)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/admissions/") && strings.HasSuffix(path, "/select"):
		candidate(http.HandlerFunc(r.deps.AdmissionHandler.Select)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/admissions/") && strings.HasSuffix(path, "/status"):
		institute(http.HandlerFunc(r.deps.AdmissionHandler.SetStatus)).ServeHTTP(w, req)
		return

	case req.Method == http.MethodPost && path == "/jobs":
		company(http.HandlerFunc(r.deps.JobHandler.Post)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/jobs/mine":
		company(http.HandlerFunc(r.deps.JobHandler.ListByCompany)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/jobs/matching":
		candidate(http.HandlerFunc(r.deps.JobHandler.ListMatching)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/jobs/") && strings.HasSuffix(path, "/applicants"):
		company(http.HandlerFunc(r.deps.JobHandler.QualifiedApplicants)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/jobs/"):
		company(http.HandlerFunc(r.deps.JobHandler.Update)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/jobs/"):
		company(http.HandlerFunc(r.deps.JobHandler.Delete)).ServeHTTP(w, req)
		return

	case req.Method == http.MethodPost && path == "/job-applications":
		candidate(http.HandlerFunc(r.deps.JobHandler.Apply)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/job-applications":
		candidate(http.HandlerFunc(r.deps.JobHandler.ListOwnApplications)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/job-applications/") && strings.HasSuffix(path, "/ready"):
		candidate(http.HandlerFunc(r.deps.JobHandler.SetReady)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/job-applications/") && strings.HasSuffix(path, "/interview"):
		company(http.HandlerFunc(r.deps.JobHandler.ScheduleInterview)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/job-applications/") && strings.HasSuffix(path, "/reject"):
		company(http.HandlerFunc(r.deps.JobHandler.RejectApplicant)).ServeHTTP(w, req)
		return

	case req.Method == http.MethodGet && path == "/notifications":
		r.deps.NotificationHandler.List(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/notifications/") && strings.HasSuffix(path, "/read"):
		r.deps.NotificationHandler.MarkRead(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/notifications/"):
		r.deps.NotificationHandler.Delete(w, req)
		return
	}

	http.NotFound(w, req)
}
