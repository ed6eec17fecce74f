package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"drezzle/internal/config"
	"drezzle/internal/service"
)

type Handlers struct {
	AuthService         service.AuthService
	VerificationService service.VerificationService
	ContentService      service.ContentService
	SocialService       service.SocialService
	AdminService        service.AdminService
	Cfg                 *config.Config
	Validate            *validator.Validate
}

func NewHandlers(services *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:         services.Auth,
		VerificationService: services.Verification,
		ContentService:      services.Content,
		SocialService:       services.Social,
		AdminService:        services.Admin,
		Cfg:                 config,
		Validate:            validator.New(),
	}
}

// pagination читает skip/limit из query. limit ограничен сотней.
func pagination(r *http.Request) (int, int) {
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	if skip < 0 {
		skip = 0
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	return skip, limit
}
