package service

import (
	"context"
	"sync"

	"anoa.com/yayasanalhikmah/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	users       map[string]*model.User       // by id
	permissions map[string]*model.Permission // by user id
	roles       map[string]*model.Role       // by name
}

func newFakeUserRepo() *fakeUserRepo {
	repo := &fakeUserRepo{
		users:       make(map[string]*model.User),
		permissions: make(map[string]*model.Permission),
		roles:       make(map[string]*model.Role),
	}

	names := []string{
		model.RoleSuperAdmin,
		model.RoleKetuaYayasan,
		model.RoleKepalaSekolah,
		model.RoleTeacher,
		model.RoleParent,
	}
	for i, name := range names {
		repo.roles[name] = &model.Role{ID: uint(i + 1), Name: name}
	}

	return repo
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User, perm *model.Permission) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.RoleID != nil {
		for _, role := range r.roles {
			if role.ID == *user.RoleID {
				user.Role = *role
			}
		}
	}
	r.users[user.ID.String()] = user

	if perm != nil {
		perm.UserID = user.ID
		if perm.ID == uuid.Nil {
			perm.ID = uuid.New()
		}
		r.permissions[user.ID.String()] = perm
		user.Permission = perm
	}

	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	user.Permission = r.permissions[id]
	return user, nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			user.Permission = r.permissions[user.ID.String()]
			// Return a copy so callers mutating the result (e.g. scrubbing
			// PasswordHash for responses) don't alter the stored row, matching
			// real database-backed repository behavior.
			found := *user
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindRoleByName(ctx context.Context, name string) (*model.Role, error) {
	role, ok := r.roles[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return role, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	for _, user := range r.users {
		user.Permission = r.permissions[user.ID.String()]
		users = append(users, user)
	}
	return users, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *model.User) error {
	if _, ok := r.users[user.ID.String()]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.users[user.ID.String()] = user
	return nil
}

func (r *fakeUserRepo) FindPermission(ctx context.Context, userID string) (*model.Permission, error) {
	perm, ok := r.permissions[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return perm, nil
}

func (r *fakeUserRepo) UpdatePermission(ctx context.Context, userID string, updates map[string]interface{}) error {
	perm, ok := r.permissions[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	applyPermissionUpdates(perm, updates)
	return nil
}

func (r *fakeUserRepo) Approve(ctx context.Context, userID string, roleID *uint, updates map[string]interface{}) error {
	user, ok := r.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}

	user.Status = model.StatusActive
	if roleID != nil {
		user.RoleID = roleID
		for _, role := range r.roles {
			if role.ID == *roleID {
				user.Role = *role
			}
		}
	}

	if perm, ok := r.permissions[userID]; ok {
		applyPermissionUpdates(perm, updates)
	}

	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.permissions, id)
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func applyPermissionUpdates(perm *model.Permission, updates map[string]interface{}) {
	for flag, v := range updates {
		on, _ := v.(bool)
		switch flag {
		case "can_edit_students":
			perm.CanEditStudents = on
		case "can_edit_teachers":
			perm.CanEditTeachers = on
		case "can_edit_graduates":
			perm.CanEditGraduates = on
		case "can_view_reports":
			perm.CanViewReports = on
		case "can_manage_ppdb":
			perm.CanManagePPDB = on
		case "can_manage_users":
			perm.CanManageUsers = on
		case "can_edit_website":
			perm.CanEditWebsite = on
		case "can_view_analytics":
			perm.CanViewAnalytics = on
		}
	}
}

type fakePPDBRepo struct {
	settings      *model.PPDBSettings
	registrations map[string]*model.PPDBRegistration
	formFields    []*model.PPDBFormField
}

func newFakePPDBRepo() *fakePPDBRepo {
	return &fakePPDBRepo{
		registrations: make(map[string]*model.PPDBRegistration),
	}
}

func (r *fakePPDBRepo) GetSettings(ctx context.Context) (*model.PPDBSettings, error) {
	if r.settings == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return r.settings, nil
}

func (r *fakePPDBRepo) SaveSettings(ctx context.Context, settings *model.PPDBSettings) error {
	settings.ID = 1
	r.settings = settings
	return nil
}

func (r *fakePPDBRepo) CreateRegistration(ctx context.Context, reg *model.PPDBRegistration) error {
	if reg.ID == uuid.Nil {
		reg.ID = uuid.New()
	}
	r.registrations[reg.ID.String()] = reg
	return nil
}

func (r *fakePPDBRepo) FindRegistrationByID(ctx context.Context, id string) (*model.PPDBRegistration, error) {
	reg, ok := r.registrations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return reg, nil
}

func (r *fakePPDBRepo) FindRegistrations(ctx context.Context, status, program string) ([]*model.PPDBRegistration, error) {
	var regs []*model.PPDBRegistration
	for _, reg := range r.registrations {
		if status != "" && reg.Status != status {
			continue
		}
		if program != "" && reg.ProgramPilihan != program {
			continue
		}
		regs = append(regs, reg)
	}
	return regs, nil
}

func (r *fakePPDBRepo) TransitionStatus(ctx context.Context, id, newStatus string) (bool, error) {
	reg, ok := r.registrations[id]
	if !ok || reg.Status != model.RegistrationPending {
		return false, nil
	}
	reg.Status = newStatus
	return true, nil
}

func (r *fakePPDBRepo) CountRegistrations(ctx context.Context, status string) (int64, error) {
	var count int64
	for _, reg := range r.registrations {
		if status == "" || reg.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *fakePPDBRepo) FindFormFields(ctx context.Context) ([]*model.PPDBFormField, error) {
	return r.formFields, nil
}

func (r *fakePPDBRepo) ReplaceFormFields(ctx context.Context, fields []*model.PPDBFormField) error {
	r.formFields = fields
	return nil
}

type fakeResetRepo struct {
	requests map[string]*model.PasswordResetRequest
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{requests: make(map[string]*model.PasswordResetRequest)}
}

func (r *fakeResetRepo) Create(ctx context.Context, req *model.PasswordResetRequest) error {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	r.requests[req.ID.String()] = req
	return nil
}

func (r *fakeResetRepo) FindByID(ctx context.Context, id string) (*model.PasswordResetRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return req, nil
}

func (r *fakeResetRepo) FindByTokenHash(ctx context.Context, tokenHash string) (*model.PasswordResetRequest, error) {
	for _, req := range r.requests {
		if req.TokenHash != nil && *req.TokenHash == tokenHash {
			return req, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeResetRepo) FindAll(ctx context.Context, status string) ([]*model.PasswordResetRequest, error) {
	var reqs []*model.PasswordResetRequest
	for _, req := range r.requests {
		if status == "" || req.Status == status {
			reqs = append(reqs, req)
		}
	}
	return reqs, nil
}

func (r *fakeResetRepo) Update(ctx context.Context, req *model.PasswordResetRequest) error {
	if _, ok := r.requests[req.ID.String()]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.requests[req.ID.String()] = req
	return nil
}

type fakeMessageRepo struct {
	messages map[string]*model.Message
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: make(map[string]*model.Message)}
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *model.Message) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	r.messages[message.ID.String()] = message
	return nil
}

func (r *fakeMessageRepo) FindByID(ctx context.Context, id string) (*model.Message, error) {
	message, ok := r.messages[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return message, nil
}

func (r *fakeMessageRepo) FindAll(ctx context.Context) ([]*model.Message, error) {
	var messages []*model.Message
	for _, message := range r.messages {
		messages = append(messages, message)
	}
	return messages, nil
}

func (r *fakeMessageRepo) FindPublished(ctx context.Context, limit int) ([]*model.Message, error) {
	var messages []*model.Message
	for _, message := range r.messages {
		if !message.IsPublished {
			continue
		}
		messages = append(messages, message)
		if limit > 0 && len(messages) == limit {
			break
		}
	}
	return messages, nil
}

func (r *fakeMessageRepo) SetPublished(ctx context.Context, id string, published bool) error {
	message, ok := r.messages[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	message.IsPublished = published
	return nil
}

func (r *fakeMessageRepo) Delete(ctx context.Context, id string) error {
	delete(r.messages, id)
	return nil
}

type fakeSettingsRepo struct {
	website  *model.WebsiteSettings
	message  *model.MessageSettings
	programs map[string]*model.ProgramDetail
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{programs: make(map[string]*model.ProgramDetail)}
}

func (r *fakeSettingsRepo) GetWebsiteSettings(ctx context.Context) (*model.WebsiteSettings, error) {
	if r.website == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return r.website, nil
}

func (r *fakeSettingsRepo) SaveWebsiteSettings(ctx context.Context, settings *model.WebsiteSettings) error {
	settings.ID = 1
	r.website = settings
	return nil
}

func (r *fakeSettingsRepo) GetMessageSettings(ctx context.Context) (*model.MessageSettings, error) {
	if r.message == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return r.message, nil
}

func (r *fakeSettingsRepo) SaveMessageSettings(ctx context.Context, settings *model.MessageSettings) error {
	settings.ID = 1
	r.message = settings
	return nil
}

func (r *fakeSettingsRepo) FindProgramDetails(ctx context.Context) ([]*model.ProgramDetail, error) {
	var details []*model.ProgramDetail
	for _, detail := range r.programs {
		details = append(details, detail)
	}
	return details, nil
}

func (r *fakeSettingsRepo) FindProgramDetail(ctx context.Context, program string) (*model.ProgramDetail, error) {
	detail, ok := r.programs[program]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return detail, nil
}

func (r *fakeSettingsRepo) SaveProgramDetail(ctx context.Context, detail *model.ProgramDetail) error {
	r.programs[detail.Program] = detail
	return nil
}

type fakeVisitorRepo struct {
	mu     sync.Mutex
	counts map[string]int64
}

func newFakeVisitorRepo() *fakeVisitorRepo {
	return &fakeVisitorRepo{counts: make(map[string]int64)}
}

func (r *fakeVisitorRepo) AddToDate(ctx context.Context, date string, delta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[date] += delta
	return nil
}

func (r *fakeVisitorRepo) CountForDate(ctx context.Context, date string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[date], nil
}

func (r *fakeVisitorRepo) Total(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total int64
	for _, count := range r.counts {
		total += count
	}
	return total, nil
}
