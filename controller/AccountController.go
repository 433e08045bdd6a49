package controller

import (
	"net/http"

	"github.com/euscan/euscanwww/context"
	"github.com/euscan/euscanwww/exception"
	"github.com/euscan/euscanwww/security"
	"github.com/euscan/euscanwww/service"
	"github.com/euscan/euscanwww/templates"
	"github.com/euscan/euscanwww/utils"
	"github.com/euscan/euscanwww/view"
	log "github.com/sirupsen/logrus"
)

const accountRecentVersions = 20

type AccountController interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	Index(w http.ResponseWriter, r *http.Request)
	Packages(w http.ResponseWriter, r *http.Request)
	Categories(w http.ResponseWriter, r *http.Request)
	Herds(w http.ResponseWriter, r *http.Request)
	Maintainers(w http.ResponseWriter, r *http.Request)
}

func NewAccountController(userService service.UserService,
	favoritesService service.FavoritesService,
	tokenRevocationService service.TokenRevocationService,
	renderer templates.Renderer,
	urls templates.URLFunc,
	allowRegistration bool) AccountController {
	return &accountControllerImpl{
		userService:            userService,
		favoritesService:       favoritesService,
		tokenRevocationService: tokenRevocationService,
		renderer:               renderer,
		urls:                   urls,
		allowRegistration:      allowRegistration,
	}
}

type accountControllerImpl struct {
	userService            service.UserService
	favoritesService       service.FavoritesService
	tokenRevocationService service.TokenRevocationService
	renderer               templates.Renderer
	urls                   templates.URLFunc
	allowRegistration      bool
}

func (a accountControllerImpl) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		next := r.URL.Query().Get("next")
		if context.Create(r).IsAuthenticated() {
			http.Redirect(w, r, utils.LocalRedirectTarget(next, a.urls("accounts_index")), http.StatusFound)
			return
		}
		renderPage(a.renderer, w, r, "login", "Log in", view.LoginPage{Next: next})
		return
	}
	if err := r.ParseForm(); err != nil {
		renderError(a.renderer, w, r, "Failed to parse login form", &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.BadRequestBody,
			Message: exception.BadRequestBodyMsg,
			Debug:   err.Error(),
		})
		return
	}
	req := view.LoginReq{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
		Next:     r.PostForm.Get("next"),
	}
	user, err := a.authenticate(req)
	if err != nil {
		customError := utils.ToCustomError("Failed to log in", err)
		if customError.Status >= http.StatusInternalServerError {
			renderError(a.renderer, w, r, "Failed to log in", err)
			return
		}
		renderPage(a.renderer, w, r, "login", "Log in", view.LoginPage{
			Next:     req.Next,
			Username: req.Username,
			Error:    customError.FormattedMessage(),
		})
		return
	}
	if err = security.StartSession(w, *user); err != nil {
		renderError(a.renderer, w, r, "Failed to start session", err)
		return
	}
	log.Debugf("User %s logged in", user.Name)
	http.Redirect(w, r, utils.LocalRedirectTarget(req.Next, a.urls("accounts_index")), http.StatusFound)
}

func (a accountControllerImpl) authenticate(req view.LoginReq) (*view.User, error) {
	if err := utils.ValidateObject(req); err != nil {
		return nil, err
	}
	return a.userService.AuthenticateUser(req.Username, req.Password)
}

func (a accountControllerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := context.Create(r)
	if ctx.IsAuthenticated() {
		if err := a.tokenRevocationService.RevokeUserTokens(ctx.GetUserId()); err != nil {
			renderError(a.renderer, w, r, "Failed to perform user logout", err)
			return
		}
		log.Debugf("User %s logged out", ctx.GetUserName())
	}
	security.EndSession(w)
	http.Redirect(w, r, a.urls("index"), http.StatusFound)
}

func (a accountControllerImpl) Register(w http.ResponseWriter, r *http.Request) {
	if !a.allowRegistration {
		if r.Method == http.MethodPost {
			renderError(a.renderer, w, r, "Registration is closed", &exception.CustomError{
				Status:  http.StatusForbidden,
				Message: "Registration is closed",
			})
			return
		}
		renderPage(a.renderer, w, r, "register", "Register", view.RegisterPage{Allowed: false})
		return
	}
	if r.Method != http.MethodPost {
		renderPage(a.renderer, w, r, "register", "Register", view.RegisterPage{Allowed: true})
		return
	}
	if err := r.ParseForm(); err != nil {
		renderError(a.renderer, w, r, "Failed to parse registration form", &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.BadRequestBody,
			Message: exception.BadRequestBodyMsg,
			Debug:   err.Error(),
		})
		return
	}
	req := view.RegisterReq{
		Username: r.PostForm.Get("username"),
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
	}
	user, err := a.userService.RegisterUser(req)
	if err != nil {
		customError := utils.ToCustomError("Failed to register user", err)
		if customError.Status >= http.StatusInternalServerError {
			renderError(a.renderer, w, r, "Failed to register user", err)
			return
		}
		renderPage(a.renderer, w, r, "register", "Register", view.RegisterPage{
			Username: req.Username,
			Email:    req.Email,
			Error:    customError.FormattedMessage(),
			Allowed:  true,
		})
		return
	}
	if err = security.StartSession(w, *user); err != nil {
		renderError(a.renderer, w, r, "Failed to start session", err)
		return
	}
	http.Redirect(w, r, a.urls("accounts_index"), http.StatusFound)
}

func (a accountControllerImpl) Index(w http.ResponseWriter, r *http.Request) {
	user := context.Create(r).GetUser()
	summary, err := a.favoritesService.GetAccountSummary(*user, accountRecentVersions)
	if err != nil {
		renderError(a.renderer, w, r, "Failed to get account summary", err)
		return
	}
	renderPage(a.renderer, w, r, "accounts_index", user.Name, summary)
}

func (a accountControllerImpl) Packages(w http.ResponseWriter, r *http.Request) {
	packages, err := a.favoritesService.GetFavoritePackages(context.Create(r).GetUserId())
	if err != nil {
		renderError(a.renderer, w, r, "Failed to get favourite packages", err)
		return
	}
	renderPage(a.renderer, w, r, "packages", "Your packages", view.ListingPage{
		PackageList: view.PackageList{Title: "Your packages", Kind: view.FavoritePackage, Packages: packages},
	})
}

func (a accountControllerImpl) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := a.favoritesService.GetFavoriteCategories(context.Create(r).GetUserId())
	if err != nil {
		renderError(a.renderer, w, r, "Failed to get favourite categories", err)
		return
	}
	renderPage(a.renderer, w, r, "categories", "Your categories", categories)
}

func (a accountControllerImpl) Herds(w http.ResponseWriter, r *http.Request) {
	herds, err := a.favoritesService.GetFavoriteHerds(context.Create(r).GetUserId())
	if err != nil {
		renderError(a.renderer, w, r, "Failed to get favourite herds", err)
		return
	}
	renderPage(a.renderer, w, r, "herds", "Your herds", herds)
}

func (a accountControllerImpl) Maintainers(w http.ResponseWriter, r *http.Request) {
	maintainers, err := a.favoritesService.GetFavoriteMaintainers(context.Create(r).GetUserId())
	if err != nil {
		renderError(a.renderer, w, r, "Failed to get favourite maintainers", err)
		return
	}
	renderPage(a.renderer, w, r, "maintainers", "Your maintainers", maintainers)
}
