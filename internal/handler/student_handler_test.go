package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"anoa.com/yayasanalhikmah/internal/dto"
	"anoa.com/yayasanalhikmah/internal/model"
	"github.com/gin-gonic/gin"
)

type fakeStudentService struct {
	students []*model.Student
}

func (s *fakeStudentService) Create(ctx context.Context, input dto.StudentInput) (*model.Student, error) {
	return &model.Student{}, nil
}

func (s *fakeStudentService) Get(ctx context.Context, id string) (*model.Student, error) {
	return &model.Student{}, nil
}

func (s *fakeStudentService) List(ctx context.Context, query dto.ListQuery) ([]*model.Student, error) {
	return s.students, nil
}

func (s *fakeStudentService) Update(ctx context.Context, id string, input dto.StudentInput) (*model.Student, error) {
	return &model.Student{}, nil
}

func (s *fakeStudentService) Delete(ctx context.Context, id string) error {
	return nil
}

// The marketing pages list students without logging in, so the list route
// must work with no auth middleware in front of it.
func TestStudentListServesWithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeStudentService{students: []*model.Student{
		{Name: "Ahmad", Program: model.ProgramTKATPA, ParentName: "Budi"},
	}}

	router := gin.New()
	router.GET("/api/students", NewStudentHandler(svc).List)

	req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body struct {
		Data []model.Student `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Data) != 1 || body.Data[0].Name != "Ahmad" {
		t.Fatalf("unexpected payload: %s", w.Body.String())
	}
}
