package bootstrap

import (
	"fmt"
	"log"
	"time"

	"anoa.com/yayasanalhikmah/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Permission{},
		&model.Student{},
		&model.Teacher{},
		&model.Graduate{},
		&model.PPDBSettings{},
		&model.PPDBRegistration{},
		&model.PPDBFormField{},
		&model.WebsiteSettings{},
		&model.ProgramDetail{},
		&model.Message{},
		&model.MessageSettings{},
		&model.Notification{},
		&model.VisitorStat{},
		&model.PasswordResetRequest{},
	)
}

func SeedRoles(db *gorm.DB) error {
	defaultRoles := []model.Role{
		{Name: model.RoleSuperAdmin, Description: "Administrator utama yayasan"},
		{Name: model.RoleKetuaYayasan, Description: "Ketua yayasan"},
		{Name: model.RoleKepalaSekolah, Description: "Kepala sekolah"},
		{Name: model.RoleTeacher, Description: "Pengajar"},
		{Name: model.RoleParent, Description: "Orang tua santri"},
	}

	for _, role := range defaultRoles {
		var count int64
		if err := db.Model(&model.Role{}).
			Where("name = ?", role.Name).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := db.Create(&role).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

// SeedAdminUser creates the development super admin. Production
// deployments are expected to create their own first account.
func SeedAdminUser(db *gorm.DB, appEnv string) error {
	if appEnv == "production" {
		return nil
	}

	var superAdminRole model.Role
	if err := db.Where("name = ?", model.RoleSuperAdmin).First(&superAdminRole).Error; err != nil {
		return err
	}

	var count int64
	if err := db.Model(&model.User{}).
		Where("username = ?", "admin").
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin user already exists, skipping seed")
		return nil
	}

	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	email := "admin@alhikmah.sch.id"
	adminUser := model.User{
		Username:     "admin",
		Email:        &email,
		PasswordHash: string(hashedPasswordBytes),
		Name:         "Administrator",
		RoleID:       &superAdminRole.ID,
		Status:       model.StatusActive,
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&adminUser).Error; err != nil {
			return err
		}

		adminPermission := model.Permission{
			UserID:           adminUser.ID,
			CanEditStudents:  true,
			CanEditTeachers:  true,
			CanEditGraduates: true,
			CanViewReports:   true,
			CanManagePPDB:    true,
			CanManageUsers:   true,
			CanEditWebsite:   true,
			CanViewAnalytics: true,
		}
		if err := tx.Create(&adminPermission).Error; err != nil {
			return err
		}

		log.Println("Admin user seeded (username: admin)")
		return nil
	})
}

// SeedSingletons makes sure every id=1 settings row exists so reads
// never have to special-case a missing record.
func SeedSingletons(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.PPDBSettings{}).Where("id = ?", 1).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		now := time.Now()
		settings := model.PPDBSettings{
			ID:           1,
			IsOpen:       false,
			StartDate:    now,
			EndDate:      now,
			AcademicYear: academicYearFor(now),
		}
		if err := db.Create(&settings).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&model.WebsiteSettings{}).Where("id = ?", 1).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := db.Create(&model.WebsiteSettings{ID: 1}).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&model.MessageSettings{}).Where("id = ?", 1).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		settings := model.MessageSettings{ID: 1, AutoPublish: false, MaxPerPage: 10}
		if err := db.Create(&settings).Error; err != nil {
			return err
		}
	}

	return nil
}

func SeedPrograms(db *gorm.DB) error {
	programs := []model.ProgramDetail{
		{Program: model.ProgramTKATPA, Description: "Taman Kanak-kanak Al-Qur'an dan Taman Pendidikan Al-Qur'an", AgeRange: "4-12 tahun"},
		{Program: model.ProgramPAUDKober, Description: "Pendidikan Anak Usia Dini dan Kelompok Bermain", AgeRange: "2-6 tahun"},
		{Program: model.ProgramDiniyah, Description: "Madrasah Diniyah Takmiliyah", AgeRange: "7-15 tahun"},
	}

	for _, program := range programs {
		var count int64
		if err := db.Model(&model.ProgramDetail{}).
			Where("program = ?", program.Program).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := db.Create(&program).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

// academicYearFor formats the Indonesian school year, which starts in
// July ("2026/2027" from July 2026 through June 2027).
func academicYearFor(t time.Time) string {
	year := t.Year()
	if t.Month() < time.July {
		year--
	}
	return fmt.Sprintf("%d/%d", year, year+1)
}
