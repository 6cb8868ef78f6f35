package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"anoa.com/yayasanalhikmah/internal/dto"
	"anoa.com/yayasanalhikmah/internal/model"
	"anoa.com/yayasanalhikmah/internal/repository"
	"gorm.io/gorm"
)

// fallbackWhatsApp is used when the stored contact section has no number.
const fallbackWhatsApp = "6281234567890"

// DefaultWebsiteContent is the complete fallback copy. The public settings
// endpoint merges the stored blob over these defaults field by field, so the
// frontend never sees an empty section.
func DefaultWebsiteContent() model.WebsiteContent {
	return model.WebsiteContent{
		Hero: model.HeroSection{
			Title:    "Yayasan Pendidikan Islam Al-Hikmah",
			Subtitle: "Membentuk generasi Qur'ani yang berakhlak mulia",
		},
		About: model.AboutSection{
			Title:       "Tentang Kami",
			Description: "Yayasan Al-Hikmah menyelenggarakan pendidikan TKA/TPA, PAUD/KOBER, dan Diniyah.",
			Vision:      "Menjadi lembaga pendidikan Islam terdepan.",
			Mission:     "Mendidik dengan ilmu, adab, dan keteladanan.",
		},
		Contact: model.ContactSection{
			WhatsApp: fallbackWhatsApp,
		},
		Footer: model.FooterSection{
			Text: "© Yayasan Pendidikan Islam Al-Hikmah",
		},
		Stats: model.StatsSection{
			ShowStudents:  true,
			ShowTeachers:  true,
			ShowGraduates: true,
		},
	}
}

type SettingsService interface {
	// GetPublic returns the stored content merged over defaults plus the
	// WhatsApp deep links.
	GetPublic(ctx context.Context) (*dto.SettingsResponse, error)
	Save(ctx context.Context, content model.WebsiteContent) (*model.WebsiteSettings, error)

	GetMessageSettings(ctx context.Context) (*model.MessageSettings, error)
	SaveMessageSettings(ctx context.Context, input dto.MessageSettingsInput) (*model.MessageSettings, error)

	ListPrograms(ctx context.Context) ([]*model.ProgramDetail, error)
	UpdateProgram(ctx context.Context, program string, input dto.ProgramDetailInput) (*model.ProgramDetail, error)
}

type settingsService struct {
	repo repository.SettingsRepository
}

func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

func (s *settingsService) GetPublic(ctx context.Context) (*dto.SettingsResponse, error) {
	content := DefaultWebsiteContent()

	stored, err := s.repo.GetWebsiteSettings(ctx)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if stored != nil {
		content = MergeContent(content, stored.Content)
	}

	phone := content.Contact.WhatsApp
	if phone == "" {
		phone = fallbackWhatsApp
	}

	return &dto.SettingsResponse{
		Content: content,
		WhatsAppLinks: dto.WhatsAppLinks{
			ContactAdmin:  BuildWhatsAppLink(phone, "Assalamu'alaikum, saya ingin bertanya tentang Yayasan Al-Hikmah."),
			Consultation:  BuildWhatsAppLink(phone, "Assalamu'alaikum, saya ingin konsultasi pendaftaran."),
			ScheduleVisit: BuildWhatsAppLink(phone, "Assalamu'alaikum, saya ingin menjadwalkan kunjungan."),
		},
	}, nil
}

func (s *settingsService) Save(ctx context.Context, content model.WebsiteContent) (*model.WebsiteSettings, error) {
	settings := &model.WebsiteSettings{ID: 1, Content: content}
	if err := s.repo.SaveWebsiteSettings(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

func (s *settingsService) GetMessageSettings(ctx context.Context) (*model.MessageSettings, error) {
	settings, err := s.repo.GetMessageSettings(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.MessageSettings{ID: 1, AutoPublish: false, MaxPerPage: 10}, nil
		}
		return nil, err
	}

	return settings, nil
}

func (s *settingsService) SaveMessageSettings(ctx context.Context, input dto.MessageSettingsInput) (*model.MessageSettings, error) {
	settings := &model.MessageSettings{
		ID:          1,
		AutoPublish: input.AutoPublish,
		MaxPerPage:  input.MaxPerPage,
	}

	if err := s.repo.SaveMessageSettings(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

func (s *settingsService) ListPrograms(ctx context.Context) ([]*model.ProgramDetail, error) {
	programs, err := s.repo.FindProgramDetails(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range programs {
		p.Slug = model.ProgramSlug(p.Program)
	}

	return programs, nil
}

func (s *settingsService) UpdateProgram(ctx context.Context, program string, input dto.ProgramDetailInput) (*model.ProgramDetail, error) {
	detail, err := s.repo.FindProgramDetail(ctx, program)
	if err != nil {
		return nil, err
	}

	detail.Description = input.Description
	detail.Schedule = input.Schedule
	detail.MonthlyFee = input.MonthlyFee
	detail.AgeRange = input.AgeRange

	if err := s.repo.SaveProgramDetail(ctx, detail); err != nil {
		return nil, err
	}

	detail.Slug = model.ProgramSlug(detail.Program)

	return detail, nil
}

// MergeContent overlays stored values onto defaults. Empty strings in the
// stored blob keep the default; booleans in the stats section are taken from
// the stored blob as-is once anything in it has been saved.
func MergeContent(defaults, stored model.WebsiteContent) model.WebsiteContent {
	out := defaults

	mergeStr(&out.Hero.Title, stored.Hero.Title)
	mergeStr(&out.Hero.Subtitle, stored.Hero.Subtitle)
	mergeStr(&out.Hero.ImageURL, stored.Hero.ImageURL)

	mergeStr(&out.About.Title, stored.About.Title)
	mergeStr(&out.About.Description, stored.About.Description)
	mergeStr(&out.About.Vision, stored.About.Vision)
	mergeStr(&out.About.Mission, stored.About.Mission)

	mergeStr(&out.Contact.Address, stored.Contact.Address)
	mergeStr(&out.Contact.Phone, stored.Contact.Phone)
	mergeStr(&out.Contact.WhatsApp, stored.Contact.WhatsApp)
	mergeStr(&out.Contact.Email, stored.Contact.Email)
	mergeStr(&out.Contact.MapsURL, stored.Contact.MapsURL)

	mergeStr(&out.Footer.Text, stored.Footer.Text)
	mergeStr(&out.Footer.Instagram, stored.Footer.Instagram)
	mergeStr(&out.Footer.Facebook, stored.Footer.Facebook)
	mergeStr(&out.Footer.YouTube, stored.Footer.YouTube)

	if stored != (model.WebsiteContent{}) {
		out.Stats = stored.Stats
	}

	return out
}

func mergeStr(dst *string, v string) {
	if strings.TrimSpace(v) != "" {
		*dst = v
	}
}

// BuildWhatsAppLink builds a wa.me deep link with the message pre-filled.
func BuildWhatsAppLink(phone, text string) string {
	phone = strings.TrimPrefix(strings.TrimSpace(phone), "+")
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(text))
}
