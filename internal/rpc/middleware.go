package rpc

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/daniilsolovey/blog-cms/internal/blog"
	"github.com/daniilsolovey/blog-cms/internal/db"
	"github.com/vmkteam/zenrpc/v2"
)

// accessPublic needs no session, accessAuthenticated needs any signed-in user.
const (
	accessPublic        = blog.Role("")
	accessAuthenticated = blog.RolePublic
)

// accessRules holds the minimum role per namespace.method, lowercased.
var accessRules = map[string]blog.Role{
	".healthcheck": accessPublic,

	"auth.register":             accessPublic,
	"auth.login":                accessPublic,
	"auth.logout":               accessPublic,
	"auth.verifyemail":          accessPublic,
	"auth.requestpasswordreset": accessPublic,
	"auth.resetpassword":        accessPublic,
	"auth.getcurrentuser":       accessPublic,

	"users.getusers":       blog.RoleEditor,
	"users.getuserbyid":    accessAuthenticated,
	"users.getuserprofile": accessPublic,
	"users.createuser":     blog.RoleAdmin,
	"users.updateuser":     accessAuthenticated,
	"users.deleteuser":     blog.RoleAdmin,

	"posts.getposts":              blog.RoleAuthor,
	"posts.getpublishedposts":     accessPublic,
	"posts.getfeaturedposts":      accessPublic,
	"posts.getrecentposts":        accessPublic,
	"posts.getpostbyslug":         accessPublic,
	"posts.getpostbyid":           accessPublic,
	"posts.createpost":            blog.RoleAuthor,
	"posts.updatepost":            blog.RoleAuthor,
	"posts.deletepost":            blog.RoleAuthor,
	"posts.incrementviews":        accessPublic,
	"posts.searchposts":           accessPublic,
	"posts.getpostsbycategory":    accessPublic,
	"posts.getpostsbytag":         accessPublic,
	"posts.getpostsbyauthor":      accessPublic,
	"posts.publishscheduledposts": blog.RoleEditor,

	"categories.getcategories":           accessPublic,
	"categories.getcategorieswithcounts": accessPublic,
	"categories.getcategorybyslug":       accessPublic,
	"categories.getcategorybyid":         accessPublic,
	"categories.createcategory":          blog.RoleEditor,
	"categories.updatecategory":          blog.RoleEditor,
	"categories.deletecategory":          blog.RoleEditor,

	"tags.gettags":           accessPublic,
	"tags.gettagswithcounts": accessPublic,
	"tags.getpopulartags":    accessPublic,
	"tags.gettagbyslug":      accessPublic,
	"tags.gettagbyid":        accessPublic,
	"tags.searchtags":        accessPublic,
	"tags.createtag":         blog.RoleEditor,
	"tags.updatetag":         blog.RoleEditor,
	"tags.deletetag":         blog.RoleEditor,

	"media.uploadmedia":       blog.RoleAuthor,
	"media.getmedialibrary":   blog.RoleAuthor,
	"media.getmediabyid":      accessPublic,
	"media.updatemedia":       blog.RoleAuthor,
	"media.deletemedia":       blog.RoleAuthor,
	"media.getmediausage":     blog.RoleAuthor,
	"media.searchmedia":       blog.RoleAuthor,
	"media.generatethumbnail": blog.RoleAuthor,

	"comments.getcommentsbypost":  accessPublic,
	"comments.getcomments":        blog.RoleEditor,
	"comments.getpendingcomments": blog.RoleEditor,
	"comments.getcommentbyid":     accessPublic,
	"comments.createcomment":      accessPublic,
	"comments.updatecomment":      blog.RoleEditor,
	"comments.deletecomment":      blog.RoleEditor,
	"comments.approvecomment":     blog.RoleEditor,
	"comments.rejectcomment":      blog.RoleEditor,
	"comments.markasspam":         blog.RoleEditor,
	"comments.bulkapprove":        blog.RoleEditor,
	"comments.bulkdelete":         blog.RoleEditor,

	"settings.getsitesettings":         blog.RoleAdmin,
	"settings.getpublicsettings":       accessPublic,
	"settings.updatesitesettings":      blog.RoleAdmin,
	"settings.resettodefault":          blog.RoleAdmin,
	"settings.updatetheme":             blog.RoleAdmin,
	"settings.validategoogleanalytics": accessPublic,

	"analytics.getpostanalytics":  blog.RoleEditor,
	"analytics.getdashboardstats": blog.RoleEditor,
	"analytics.getpopularposts":   blog.RoleEditor,
	"analytics.gettrafficsources": blog.RoleEditor,
	"analytics.getuserengagement": blog.RoleEditor,
	"analytics.getsearchkeywords": blog.RoleEditor,
	"analytics.recordpageview":    accessPublic,
}

// Authenticator resolves session tokens.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*blog.Principal, *db.User, error)
}

// withAuth resolves the bearer token into a principal and enforces the access rules.
// Procedures missing from the rules fall through to the server and end up as MethodNotFound.
func withAuth(auth Authenticator, logger *slog.Logger) zenrpc.MiddlewareFunc {
	return func(h zenrpc.InvokeFunc) zenrpc.InvokeFunc {
		return func(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
			procedure := strings.ToLower(zenrpc.NamespaceFromContext(ctx) + "." + method)

			principal, _, err := auth.Authenticate(ctx, bearerToken(ctx))
			if err != nil {
				logger.ErrorContext(ctx, "failed to authenticate", "method", procedure, "error", err)
				return zenrpc.NewResponseError(nil, http.StatusInternalServerError, internalErrorMessage, nil)
			}

			if required, ok := accessRules[procedure]; ok && required != accessPublic {
				if principal == nil {
					return zenrpc.NewResponseError(nil, http.StatusUnauthorized, blog.ErrUnauthorized.Error(), nil)
				}
				if !principal.Can(required) {
					return zenrpc.NewResponseError(nil, http.StatusForbidden, blog.ErrForbidden.Error(), nil)
				}
			}

			return h(blog.NewContext(ctx, principal), method, params)
		}
	}
}

// withInternalErrors logs 500 errors and hides their text from the caller.
func withInternalErrors(logger *slog.Logger) zenrpc.MiddlewareFunc {
	return func(h zenrpc.InvokeFunc) zenrpc.InvokeFunc {
		return func(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
			resp := h(ctx, method, params)
			if resp.Error != nil && (resp.Error.Code == http.StatusInternalServerError || resp.Error.Code == zenrpc.InternalError) {
				logger.ErrorContext(ctx, "rpc call failed",
					"namespace", zenrpc.NamespaceFromContext(ctx),
					"method", method,
					"error", resp.Error.Message,
				)
				resp.Error.Code = http.StatusInternalServerError
				resp.Error.Message = internalErrorMessage
				resp.Error.Data = nil
			}

			return resp
		}
	}
}

func bearerToken(ctx context.Context) string {
	r, ok := zenrpc.RequestFromContext(ctx)
	if !ok || r == nil {
		return ""
	}

	header := r.Header.Get("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}

	return ""
}
