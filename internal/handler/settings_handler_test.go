package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"anoa.com/yayasanalhikmah/internal/dto"
	"anoa.com/yayasanalhikmah/internal/model"
	"github.com/gin-gonic/gin"
)

type fakeSettingsService struct {
	updatedProgram string
}

func (s *fakeSettingsService) GetPublic(ctx context.Context) (*dto.SettingsResponse, error) {
	return &dto.SettingsResponse{}, nil
}

func (s *fakeSettingsService) Save(ctx context.Context, content model.WebsiteContent) (*model.WebsiteSettings, error) {
	return &model.WebsiteSettings{}, nil
}

func (s *fakeSettingsService) GetMessageSettings(ctx context.Context) (*model.MessageSettings, error) {
	return &model.MessageSettings{}, nil
}

func (s *fakeSettingsService) SaveMessageSettings(ctx context.Context, input dto.MessageSettingsInput) (*model.MessageSettings, error) {
	return &model.MessageSettings{}, nil
}

func (s *fakeSettingsService) ListPrograms(ctx context.Context) ([]*model.ProgramDetail, error) {
	return nil, nil
}

func (s *fakeSettingsService) UpdateProgram(ctx context.Context, program string, input dto.ProgramDetailInput) (*model.ProgramDetail, error) {
	s.updatedProgram = program
	return &model.ProgramDetail{Program: program}, nil
}

func newProgramRouter(svc *fakeSettingsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/api/admin/website/programs/:program", NewSettingsHandler(svc).UpdateProgram)
	return router
}

func TestUpdateProgramResolvesSlug(t *testing.T) {
	cases := []struct {
		slug string
		want string
	}{
		{"tka-tpa", model.ProgramTKATPA},
		{"paud-kober", model.ProgramPAUDKober},
		{"diniyah", model.ProgramDiniyah},
	}

	for _, tc := range cases {
		t.Run(tc.slug, func(t *testing.T) {
			svc := &fakeSettingsService{}
			router := newProgramRouter(svc)

			req := httptest.NewRequest(http.MethodPut, "/api/admin/website/programs/"+tc.slug,
				strings.NewReader(`{"description":"updated"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
			}
			if svc.updatedProgram != tc.want {
				t.Fatalf("program = %q, want %q", svc.updatedProgram, tc.want)
			}
		})
	}
}

func TestUpdateProgramUnknownSlug(t *testing.T) {
	svc := &fakeSettingsService{}
	router := newProgramRouter(svc)

	for _, path := range []string{
		"/api/admin/website/programs/sd",
		// Raw program names are not routable; their slash splits the path.
		"/api/admin/website/programs/TKA/TPA",
	} {
		req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("%s: status = %d, want %d", path, w.Code, http.StatusNotFound)
		}
		if svc.updatedProgram != "" {
			t.Fatalf("%s: service should not be reached, got %q", path, svc.updatedProgram)
		}
	}
}
