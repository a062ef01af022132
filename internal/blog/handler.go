package blog

import (
	"errors"
	"mime"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rayan25nov/Blog-task-backend/internal/auth"
	"github.com/rayan25nov/Blog-task-backend/internal/httpx"
	"github.com/rayan25nov/Blog-task-backend/internal/models"
)

// imageField is the multipart field carrying the blog image.
const imageField = "image"

const multipartMemory = 32 << 20

var errInvalidCreatedAt = errors.New("invalid createdAt")

// Handler holds blog HTTP handlers.
type Handler struct {
	svc *Service
	log *zap.Logger
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Routes mounts the blog endpoints. requireAuth guards the writes and the
// caller's own id listing.
func (h *Handler) Routes(requireAuth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/user/{id}", h.ListByUser)
	r.Get("/{id}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/", h.Create)
		r.Get("/user-blogs", h.ListOwnIDs)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
	return r
}

// Create stores a new blog owned by the caller.
//
//	@Summary	Create a blog
//	@Tags		Blogs
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		title		formData	string	false	"Title"
//	@Param		description	formData	string	false	"Description"
//	@Param		createdAt	formData	string	false	"RFC 3339 timestamp or YYYY-MM-DD"
//	@Param		image		formData	file	true	"Blog image"
//	@Success	201			{object}	httpx.Payload	"Blog created successfully"
//	@Failure	400			{object}	httpx.Payload	"No file provided"
//	@Failure	401			{object}	httpx.Payload	"Missing or invalid token"
//	@Failure	404			{object}	httpx.Payload	"User not found"
//	@Security	BearerAuth
//	@Router		/blogs [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFrom(r.Context())
	if !ok {
		httpx.Fail(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	createdAt, err := parseCreatedAt(r.FormValue("createdAt"))
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid createdAt", nil)
		return
	}

	img, closeImg, err := imageFrom(r)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	defer closeImg()

	in := models.BlogInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
	}
	if createdAt != nil {
		in.CreatedAt = *createdAt
	}

	blog, err := h.svc.Create(r.Context(), claims.UserID, in, img)
	if err != nil {
		h.fail(w, "create blog", err)
		return
	}
	httpx.OK(w, http.StatusCreated, "Blog created successfully", httpx.Payload{"newBlog": blog})
}

// List returns every blog, newest first.
//
//	@Summary	List blogs
//	@Tags		Blogs
//	@Produce	json
//	@Success	200	{object}	httpx.Payload	"Blogs fetched successfully"
//	@Router		/blogs [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.svc.List(r.Context())
	if err != nil {
		h.fail(w, "list blogs", err)
		return
	}
	httpx.OK(w, http.StatusOK, "Blogs fetched successfully", httpx.Payload{"blogs": blogs})
}

// Get returns one blog.
//
//	@Summary	Get a blog
//	@Tags		Blogs
//	@Produce	json
//	@Param		id	path		string			true	"Blog ID"
//	@Success	200	{object}	httpx.Payload	"Blog fetched successfully"
//	@Failure	404	{object}	httpx.Payload	"Blog not found"
//	@Router		/blogs/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	blog, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, "get blog", err)
		return
	}
	httpx.OK(w, http.StatusOK, "Blog fetched successfully", httpx.Payload{"blog": blog})
}

// Update changes a blog the caller owns. Accepts JSON, or multipart when a
// new image is sent.
//
//	@Summary	Update a blog
//	@Tags		Blogs
//	@Accept		json,multipart/form-data
//	@Produce	json
//	@Param		id			path		string	true	"Blog ID"
//	@Param		title		formData	string	false	"Title"
//	@Param		description	formData	string	false	"Description"
//	@Param		createdAt	formData	string	false	"RFC 3339 timestamp or YYYY-MM-DD"
//	@Param		image		formData	file	false	"Replacement image"
//	@Success	200			{object}	httpx.Payload	"Blog updated successfully"
//	@Failure	403			{object}	httpx.Payload	"Unauthorized"
//	@Failure	404			{object}	httpx.Payload	"Blog not found"
//	@Security	BearerAuth
//	@Router		/blogs/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFrom(r.Context())
	if !ok {
		httpx.Fail(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	var (
		patch models.BlogPatch
		img   *Image
		err   error
	)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" || mediaType == "application/x-www-form-urlencoded" {
		patch, err = patchFromForm(r)
		if err == nil {
			var closeImg func()
			img, closeImg, err = imageFrom(r)
			if closeImg != nil {
				defer closeImg()
			}
		}
	} else {
		patch, err = patchFromJSON(r)
	}
	if err != nil {
		if errors.Is(err, errInvalidCreatedAt) {
			httpx.Fail(w, http.StatusBadRequest, "Invalid createdAt", nil)
			return
		}
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	blog, err := h.svc.Update(r.Context(), claims.UserID, chi.URLParam(r, "id"), patch, img)
	if err != nil {
		h.fail(w, "update blog", err)
		return
	}
	httpx.OK(w, http.StatusOK, "Blog updated successfully", httpx.Payload{"updatedBlog": blog})
}

// Delete removes a blog the caller owns.
//
//	@Summary	Delete a blog
//	@Tags		Blogs
//	@Produce	json
//	@Param		id	path		string			true	"Blog ID"
//	@Success	200	{object}	httpx.Payload	"Blog deleted successfully"
//	@Failure	403	{object}	httpx.Payload	"Unauthorized"
//	@Failure	404	{object}	httpx.Payload	"Blog not found"
//	@Security	BearerAuth
//	@Router		/blogs/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFrom(r.Context())
	if !ok {
		httpx.Fail(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	if err := h.svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "id")); err != nil {
		h.fail(w, "delete blog", err)
		return
	}
	httpx.OK(w, http.StatusOK, "Blog deleted successfully", nil)
}

// ListByUser returns the blogs of any user.
//
//	@Summary	List a user's blogs
//	@Tags		Blogs
//	@Produce	json
//	@Param		id	path		string			true	"User ID"
//	@Success	200	{object}	httpx.Payload	"Blogs fetched successfully"
//	@Router		/blogs/user/{id} [get]
func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.svc.ListByUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, "list user blogs", err)
		return
	}
	httpx.OK(w, http.StatusOK, "Blogs fetched successfully", httpx.Payload{"blogs": blogs})
}

// ListOwnIDs returns the ids of the caller's blogs.
//
//	@Summary	List own blog ids
//	@Tags		Blogs
//	@Produce	json
//	@Success	200	{object}	httpx.Payload	"Blog IDs fetched successfully"
//	@Failure	401	{object}	httpx.Payload	"Missing or invalid token"
//	@Failure	500	{object}	httpx.Payload	"Error while fetching Blog IDs"
//	@Security	BearerAuth
//	@Router		/blogs/user-blogs [get]
func (h *Handler) ListOwnIDs(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFrom(r.Context())
	if !ok {
		httpx.Fail(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	ids, err := h.svc.ListOwnIDs(r.Context(), claims.UserID)
	if err != nil {
		h.log.Error("list own blog ids failed", zap.String("user_id", claims.UserID), zap.Error(err))
		httpx.Fail(w, http.StatusInternalServerError, "Error while fetching Blog IDs", err)
		return
	}
	httpx.OK(w, http.StatusOK, "Blog IDs fetched successfully", httpx.Payload{"blogIds": ids})
}

// fail maps service errors to HTTP responses.
func (h *Handler) fail(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrNoImage):
		httpx.Fail(w, http.StatusBadRequest, "No file provided", nil)
	case errors.Is(err, ErrBlogNotFound):
		httpx.Fail(w, http.StatusNotFound, "Blog not found", nil)
	case errors.Is(err, ErrOwnerNotFound):
		httpx.Fail(w, http.StatusNotFound, "User not found", nil)
	case errors.Is(err, ErrForbidden):
		httpx.Fail(w, http.StatusForbidden, "Unauthorized", nil)
	default:
		h.log.Error(op+" failed", zap.Error(err))
		httpx.Fail(w, http.StatusInternalServerError, "Internal server error", err)
	}
}

// imageFrom returns the uploaded image, or nil when the request has none.
// The returned close func is never nil.
func imageFrom(r *http.Request) (*Image, func(), error) {
	noop := func() {}
	if r.MultipartForm == nil {
		return nil, noop, nil
	}
	f, hdr, err := r.FormFile(imageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, noop, nil
		}
		return nil, noop, err
	}
	return &Image{
		Filename:    hdr.Filename,
		ContentType: contentType(hdr),
		Size:        hdr.Size,
		Body:        f,
	}, func() { _ = f.Close() }, nil
}

func contentType(hdr *multipart.FileHeader) string {
	if ct := hdr.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func patchFromForm(r *http.Request) (models.BlogPatch, error) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return models.BlogPatch{}, err
	}

	var patch models.BlogPatch
	if v, ok := formValue(r, "title"); ok {
		patch.Title = &v
	}
	if v, ok := formValue(r, "description"); ok {
		patch.Description = &v
	}
	if v, ok := formValue(r, "createdAt"); ok {
		t, err := parseCreatedAt(v)
		if err != nil {
			return models.BlogPatch{}, err
		}
		patch.CreatedAt = t
	}
	return patch, nil
}

func patchFromJSON(r *http.Request) (models.BlogPatch, error) {
	var body struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		CreatedAt   *string `json:"createdAt"`
	}
	if err := httpx.DecodeJSON(r, &body); err != nil {
		return models.BlogPatch{}, err
	}

	patch := models.BlogPatch{Title: body.Title, Description: body.Description}
	if body.CreatedAt != nil {
		t, err := parseCreatedAt(*body.CreatedAt)
		if err != nil {
			return models.BlogPatch{}, err
		}
		patch.CreatedAt = t
	}
	return patch, nil
}

// formValue reports whether key was sent at all, so an empty string can
// still clear a field.
func formValue(r *http.Request, key string) (string, bool) {
	vs, ok := r.PostForm[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// parseCreatedAt accepts RFC 3339 or a bare date. Empty means unset.
func parseCreatedAt(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, v); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, errInvalidCreatedAt
}
