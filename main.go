package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"

	firebase "firebase.google.com/go/v4"
	"github.com/curioswitch/go-curiostack/server"
	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/webex92-team1/foodmatch-server/internal/category"
	"github.com/webex92-team1/foodmatch-server/internal/config"
	"github.com/webex92-team1/foodmatch-server/internal/foodmatchdb"
	"github.com/webex92-team1/foodmatch-server/internal/handler/addfavorite"
	"github.com/webex92-team1/foodmatch-server/internal/handler/addhistory"
	"github.com/webex92-team1/foodmatch-server/internal/handler/createprofile"
	"github.com/webex92-team1/foodmatch-server/internal/handler/getprofile"
	"github.com/webex92-team1/foodmatch-server/internal/handler/getrecipe"
	"github.com/webex92-team1/foodmatch-server/internal/handler/removefavorite"
	"github.com/webex92-team1/foodmatch-server/internal/handler/searchcategories"
	"github.com/webex92-team1/foodmatch-server/internal/handler/searchrecipes"
	"github.com/webex92-team1/foodmatch-server/internal/handler/shortcuts"
	"github.com/webex92-team1/foodmatch-server/internal/httpapi"
	"github.com/webex92-team1/foodmatch-server/internal/recipeapi"
)

//go:embed conf/*.yaml
var confFiles embed.FS

func main() {
	conf, _ := fs.Sub(confFiles, "conf")
	os.Exit(server.Main(&config.Config{}, conf, setupServer))
}

func setupServer(ctx context.Context, conf *config.Config, s *server.Server) error {
	mux := server.Mux(s)

	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: conf.Google.Project})
	if err != nil {
		return fmt.Errorf("main: create firebase app: %w", err)
	}

	fbAuth, err := fbApp.Auth(ctx)
	if err != nil {
		return fmt.Errorf("main: create firebase auth client: %w", err)
	}

	firestore, err := fbApp.Firestore(ctx)
	if err != nil {
		return fmt.Errorf("main: create firestore client: %w", err)
	}
	defer func() {
		if err := firestore.Close(); err != nil {
			slog.ErrorContext(ctx, "main: close firestore client", "error", err)
		}
	}()

	var catSource category.Source
	if conf.Categories.URL != "" {
		catSource = &category.HTTPSource{URL: conf.Categories.URL}
	} else {
		catSource = &category.FileSource{Path: conf.Categories.Path}
	}
	categories := category.NewIndex(catSource)

	recipes := recipeapi.NewClient(conf.Rakuten.AppID, categories)
	if conf.Rakuten.BaseURL != "" {
		recipes.BaseURL = conf.Rakuten.BaseURL
	}

	profiles := foodmatchdb.NewProfileStore(firestore)

	fbMW := firebaseauth.NewMiddleware(fbAuth)
	mux.Use(middleware.Maybe(fbMW, func(r *http.Request) bool {
		return strings.HasPrefix(r.URL.Path, "/api/profile/")
	}))

	httpapi.Handle(mux, "/api/recipes/search", searchrecipes.NewHandler(recipes).SearchRecipes)
	httpapi.Handle(mux, "/api/recipes/get", getrecipe.NewHandler(recipes).GetRecipe)
	httpapi.Handle(mux, "/api/categories/search", searchcategories.NewHandler(categories).SearchCategories)
	httpapi.Handle(mux, "/api/shortcuts", shortcuts.NewHandler().GetShortcuts)

	httpapi.Handle(mux, "/api/profile/create", createprofile.NewHandler(profiles).CreateProfile)
	httpapi.Handle(mux, "/api/profile/get", getprofile.NewHandler(profiles).GetProfile)
	httpapi.Handle(mux, "/api/profile/favorites/add", addfavorite.NewHandler(profiles).AddFavorite)
	httpapi.Handle(mux, "/api/profile/favorites/remove", removefavorite.NewHandler(profiles).RemoveFavorite)
	httpapi.Handle(mux, "/api/profile/history/add", addhistory.NewHandler(profiles).AddHistory)

	if err := server.Start(ctx, s); err != nil {
		return fmt.Errorf("main: starting server: %w", err)
	}
	return nil
}
