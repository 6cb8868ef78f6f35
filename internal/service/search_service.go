package service

import (
	"encoding/json"
	"log"

	"anoa.com/yayasanalhikmah/internal/model"
	"github.com/meilisearch/meilisearch-go"
)

const (
	indexStudents      = "students"
	indexTeachers      = "teachers"
	indexGraduates     = "graduates"
	indexRegistrations = "ppdb_registrations"
)

// SearchService mirrors people and registration records into Meilisearch so
// admin pages get server-side free-text search. Index writes are best-effort:
// failures are logged and never fail the datastore write.
type SearchService interface {
	IndexStudent(student *model.Student)
	IndexTeacher(teacher *model.Teacher)
	IndexGraduate(graduate *model.Graduate)
	IndexRegistration(reg *model.PPDBRegistration)

	DeleteStudent(id string)
	DeleteTeacher(id string)
	DeleteGraduate(id string)

	SearchStudents(query string) ([]string, error)
	SearchTeachers(query string) ([]string, error)
	SearchGraduates(query string) ([]string, error)
	SearchRegistrations(query string) ([]string, error)
}

type searchService struct {
	client meilisearch.ServiceManager
}

func NewSearchService(client meilisearch.ServiceManager) SearchService {
	s := &searchService{client: client}
	s.initIndexes()
	return s
}

func (s *searchService) initIndexes() {
	if s.client == nil {
		return
	}

	for _, name := range []string{indexStudents, indexTeachers, indexGraduates, indexRegistrations} {
		if _, err := s.client.CreateIndex(&meilisearch.IndexConfig{
			Uid:        name,
			PrimaryKey: "id",
		}); err != nil {
			log.Printf("meilisearch: failed to ensure index %s: %v", name, err)
		}
	}

	log.Println("Meilisearch indexes initialized")
}

// Structs for Meilisearch indexing

type meiliStudentDoc struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	NIS        string `json:"nis"`
	ParentName string `json:"parent_name"`
	Program    string `json:"program"`
}

type meiliTeacherDoc struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Program  string `json:"program"`
}

type meiliGraduateDoc struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Program        string `json:"program"`
	GraduationYear int    `json:"graduation_year"`
	CurrentSchool  string `json:"current_school"`
}

type meiliRegistrationDoc struct {
	ID          string `json:"id"`
	NamaLengkap string `json:"nama_lengkap"`
	ParentName  string `json:"parent_name"`
	Phone       string `json:"phone"`
	Program     string `json:"program"`
	Status      string `json:"status"`
}

func (s *searchService) IndexStudent(student *model.Student) {
	if s.client == nil {
		return
	}

	doc := meiliStudentDoc{
		ID:         student.ID.String(),
		Name:       student.Name,
		NIS:        getStringOrEmpty(student.NIS),
		ParentName: student.ParentName,
		Program:    student.Program,
	}

	if _, err := s.client.Index(indexStudents).AddDocuments([]meiliStudentDoc{doc}, strPtr("id")); err != nil {
		log.Printf("meilisearch: failed to index student %s: %v", doc.ID, err)
	}
}

func (s *searchService) IndexTeacher(teacher *model.Teacher) {
	if s.client == nil {
		return
	}

	doc := meiliTeacherDoc{
		ID:       teacher.ID.String(),
		Name:     teacher.Name,
		Position: teacher.Position,
		Program:  teacher.Program,
	}

	if _, err := s.client.Index(indexTeachers).AddDocuments([]meiliTeacherDoc{doc}, strPtr("id")); err != nil {
		log.Printf("meilisearch: failed to index teacher %s: %v", doc.ID, err)
	}
}

func (s *searchService) IndexGraduate(graduate *model.Graduate) {
	if s.client == nil {
		return
	}

	doc := meiliGraduateDoc{
		ID:             graduate.ID.String(),
		Name:           graduate.Name,
		Program:        graduate.Program,
		GraduationYear: graduate.GraduationYear,
		CurrentSchool:  getStringOrEmpty(graduate.CurrentSchool),
	}

	if _, err := s.client.Index(indexGraduates).AddDocuments([]meiliGraduateDoc{doc}, strPtr("id")); err != nil {
		log.Printf("meilisearch: failed to index graduate %s: %v", doc.ID, err)
	}
}

func (s *searchService) IndexRegistration(reg *model.PPDBRegistration) {
	if s.client == nil {
		return
	}

	doc := meiliRegistrationDoc{
		ID:          reg.ID.String(),
		NamaLengkap: reg.NamaLengkap,
		ParentName:  reg.ParentName,
		Phone:       reg.Phone,
		Program:     reg.ProgramPilihan,
		Status:      reg.Status,
	}

	if _, err := s.client.Index(indexRegistrations).AddDocuments([]meiliRegistrationDoc{doc}, strPtr("id")); err != nil {
		log.Printf("meilisearch: failed to index registration %s: %v", doc.ID, err)
	}
}

func (s *searchService) DeleteStudent(id string)  { s.deleteDocument(indexStudents, id) }
func (s *searchService) DeleteTeacher(id string)  { s.deleteDocument(indexTeachers, id) }
func (s *searchService) DeleteGraduate(id string) { s.deleteDocument(indexGraduates, id) }

func (s *searchService) SearchStudents(query string) ([]string, error) {
	return s.search(indexStudents, query)
}

func (s *searchService) SearchTeachers(query string) ([]string, error) {
	return s.search(indexTeachers, query)
}

func (s *searchService) SearchGraduates(query string) ([]string, error) {
	return s.search(indexGraduates, query)
}

func (s *searchService) SearchRegistrations(query string) ([]string, error) {
	return s.search(indexRegistrations, query)
}

func (s *searchService) deleteDocument(index, id string) {
	if s.client == nil {
		return
	}

	if _, err := s.client.Index(index).DeleteDocument(id); err != nil {
		log.Printf("meilisearch: failed to delete document %s from %s: %v", id, index, err)
	}
}

func (s *searchService) search(index, query string) ([]string, error) {
	if s.client == nil {
		return nil, nil
	}

	resp, err := s.client.Index(index).Search(query, &meilisearch.SearchRequest{
		Limit: 200,
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		raw, err := json.Marshal(hit)
		if err != nil {
			continue
		}
		var doc struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(raw, &doc); err != nil || doc.ID == "" {
			continue
		}
		ids = append(ids, doc.ID)
	}

	return ids, nil
}

func strPtr(s string) *string {
	return &s
}

func getStringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
