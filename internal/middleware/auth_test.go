package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"anoa.com/yayasanalhikmah/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	users map[string]*model.User
}

func (r *stubUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *stubUserRepo) Create(ctx context.Context, user *model.User, perm *model.Permission) error {
	return nil
}
func (r *stubUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *stubUserRepo) FindRoleByName(ctx context.Context, name string) (*model.Role, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *stubUserRepo) FindAll(ctx context.Context) ([]*model.User, error) { return nil, nil }
func (r *stubUserRepo) Update(ctx context.Context, user *model.User) error { return nil }
func (r *stubUserRepo) FindPermission(ctx context.Context, userID string) (*model.Permission, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *stubUserRepo) UpdatePermission(ctx context.Context, userID string, updates map[string]interface{}) error {
	return nil
}
func (r *stubUserRepo) Approve(ctx context.Context, userID string, roleID *uint, updates map[string]interface{}) error {
	return nil
}
func (r *stubUserRepo) Delete(ctx context.Context, id string) error { return nil }
func (r *stubUserRepo) Count(ctx context.Context) (int64, error)    { return 0, nil }

func signToken(t *testing.T, secret string, subject string) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func newTestRouter(t *testing.T, repo *stubUserRepo, flag string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := NewAuthMiddleware(repo, "test-secret")

	router := gin.New()
	group := router.Group("/protected")
	group.Use(m.RequireAuth())
	if flag != "" {
		group.Use(m.RequirePermission(flag))
	}
	group.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return router
}

func activeUser(roleName string, perm *model.Permission) *model.User {
	id := uuid.New()
	if perm != nil {
		perm.UserID = id
	}
	return &model.User{
		ID:         id,
		Username:   "guru",
		Role:       model.Role{Name: roleName},
		Status:     model.StatusActive,
		Permission: perm,
	}
}

func TestRequireAuthMissingToken(t *testing.T) {
	router := newTestRouter(t, &stubUserRepo{}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", w.Code)
	}
}

func TestRequireAuthBadSignature(t *testing.T) {
	router := newTestRouter(t, &stubUserRepo{}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "wrong-secret", uuid.NewString()))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", w.Code)
	}
}

func TestRequireAuthValidToken(t *testing.T) {
	router := newTestRouter(t, &stubUserRepo{}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", uuid.NewString()))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200", w.Code)
	}
}

func TestRequireAuthTokenQueryFallback(t *testing.T) {
	router := newTestRouter(t, &stubUserRepo{}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected?token="+signToken(t, "test-secret", uuid.NewString()), nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200", w.Code)
	}
}

func TestRequirePermissionDeniedWithoutFlag(t *testing.T) {
	user := activeUser(model.RoleTeacher, &model.Permission{CanEditStudents: true})
	repo := &stubUserRepo{users: map[string]*model.User{user.ID.String(): user}}
	router := newTestRouter(t, repo, "can_manage_users")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", user.ID.String()))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("code = %d, want 403", w.Code)
	}
}

func TestRequirePermissionGrantedWithFlag(t *testing.T) {
	user := activeUser(model.RoleKepalaSekolah, &model.Permission{CanManagePPDB: true})
	repo := &stubUserRepo{users: map[string]*model.User{user.ID.String(): user}}
	router := newTestRouter(t, repo, "can_manage_ppdb")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", user.ID.String()))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200", w.Code)
	}
}

func TestRequirePermissionSuperAdminBypass(t *testing.T) {
	user := activeUser(model.RoleSuperAdmin, &model.Permission{})
	repo := &stubUserRepo{users: map[string]*model.User{user.ID.String(): user}}
	router := newTestRouter(t, repo, "can_manage_users")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", user.ID.String()))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200", w.Code)
	}
}

func TestRequirePermissionInactiveAccount(t *testing.T) {
	user := activeUser(model.RoleTeacher, &model.Permission{CanEditStudents: true})
	user.Status = model.StatusInactive
	repo := &stubUserRepo{users: map[string]*model.User{user.ID.String(): user}}
	router := newTestRouter(t, repo, "can_edit_students")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", user.ID.String()))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("code = %d, want 403", w.Code)
	}
}
