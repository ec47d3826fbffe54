package dashboardapimodels

import (
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"dashboard-approval-backend/models"
	dbmodels "dashboard-approval-backend/models/db"
)

type SectionState struct {
	ID          string                 `json:"id"`
	CampaignID  string                 `json:"campaign_id"`
	Status      models.DashboardStatus `json:"status"`
	SubmittedAt *time.Time             `json:"submitted_at"`
	SubmittedBy string                 `json:"submitted_by"`
	ReviewedAt  *time.Time             `json:"reviewed_at"`
	ReviewedBy  string                 `json:"reviewed_by"`
	Comment     string                 `json:"comment"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

func sectionStateConvert(base dbmodels.BaseModel, s dbmodels.Submittable) SectionState {
	return SectionState{
		ID:          base.ID,
		CampaignID:  s.CampaignID,
		Status:      s.Status,
		SubmittedAt: s.SubmittedAt,
		SubmittedBy: s.SubmittedBy,
		ReviewedAt:  s.ReviewedAt,
		ReviewedBy:  s.ReviewedBy,
		Comment:     s.Comment,
		UpdatedAt:   base.UpdatedAt,
	}
}

type CampaignInfoData struct {
	Milestones    *string `json:"milestones"`
	InvestorPitch *string `json:"investor_pitch"`
	PitchVideoURL *string `json:"pitch_video_url"`
}

func (d CampaignInfoData) Validate() error {
	return validateURL("pitch_video_url", d.PitchVideoURL)
}

func (d CampaignInfoData) Patch() dbmodels.CampaignInfoPatch {
	return dbmodels.CampaignInfoPatch{
		Milestones:    d.Milestones,
		InvestorPitch: d.InvestorPitch,
		PitchVideoURL: d.PitchVideoURL,
	}
}

type CampaignInfoView struct {
	SectionState
	Milestones    string `json:"milestones"`
	InvestorPitch string `json:"investor_pitch"`
	PitchVideoURL string `json:"pitch_video_url"`
}

func CampaignInfoConvert(rec dbmodels.DashboardCampaignInfo) CampaignInfoView {
	return CampaignInfoView{
		SectionState:  sectionStateConvert(rec.BaseModel, rec.Submittable),
		Milestones:    rec.Milestones,
		InvestorPitch: rec.InvestorPitch,
		PitchVideoURL: rec.PitchVideoURL,
	}
}

type CampaignSummaryData struct {
	Summary *string `json:"summary"`
	TagLine *string `json:"tag_line"`
}

func (d CampaignSummaryData) Validate() error {
	if d.TagLine != nil && len(*d.TagLine) > 512 {
		return errors.New("tag_line is longer than 512 characters")
	}
	return nil
}

func (d CampaignSummaryData) Patch() dbmodels.CampaignSummaryPatch {
	return dbmodels.CampaignSummaryPatch{
		Summary: d.Summary,
		TagLine: d.TagLine,
	}
}

type CampaignSummaryView struct {
	SectionState
	Summary string `json:"summary"`
	TagLine string `json:"tag_line"`
}

func CampaignSummaryConvert(rec dbmodels.DashboardCampaignSummary) CampaignSummaryView {
	return CampaignSummaryView{
		SectionState: sectionStateConvert(rec.BaseModel, rec.Submittable),
		Summary:      rec.Summary,
		TagLine:      rec.TagLine,
	}
}

type SocialsData struct {
	Website   *string `json:"website"`
	LinkedIn  *string `json:"linked_in"`
	Facebook  *string `json:"facebook"`
	Twitter   *string `json:"twitter"`
	Instagram *string `json:"instagram"`
	Youtube   *string `json:"youtube"`
}

func (d SocialsData) Validate() error {
	fields := map[string]*string{
		"website":   d.Website,
		"linked_in": d.LinkedIn,
		"facebook":  d.Facebook,
		"twitter":   d.Twitter,
		"instagram": d.Instagram,
		"youtube":   d.Youtube,
	}
	for name, value := range fields {
		if err := validateURL(name, value); err != nil {
			return err
		}
	}
	return nil
}

func (d SocialsData) Patch() dbmodels.SocialsPatch {
	return dbmodels.SocialsPatch{
		Website:   d.Website,
		LinkedIn:  d.LinkedIn,
		Facebook:  d.Facebook,
		Twitter:   d.Twitter,
		Instagram: d.Instagram,
		Youtube:   d.Youtube,
	}
}

type SocialsView struct {
	SectionState
	Website   string `json:"website"`
	LinkedIn  string `json:"linked_in"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	Youtube   string `json:"youtube"`
}

func SocialsConvert(rec dbmodels.DashboardSocials) SocialsView {
	return SocialsView{
		SectionState: sectionStateConvert(rec.BaseModel, rec.Submittable),
		Website:      rec.Website,
		LinkedIn:     rec.LinkedIn,
		Facebook:     rec.Facebook,
		Twitter:      rec.Twitter,
		Instagram:    rec.Instagram,
		Youtube:      rec.Youtube,
	}
}

type OwnerData struct {
	FullName *string `json:"full_name"`
	Title    *string `json:"title"`
	Bio      *string `json:"bio"`
	LinkedIn *string `json:"linked_in"`
	Email    *string `json:"email"`
}

func (d OwnerData) Validate() error {
	if d.Email != nil && strings.TrimSpace(*d.Email) != "" {
		if _, err := mail.ParseAddress(*d.Email); err != nil {
			return errors.New("email is not valid")
		}
	}
	return validateURL("linked_in", d.LinkedIn)
}

func (d OwnerData) Patch() dbmodels.OwnerPatch {
	return dbmodels.OwnerPatch{
		FullName: d.FullName,
		Title:    d.Title,
		Bio:      d.Bio,
		LinkedIn: d.LinkedIn,
		Email:    d.Email,
	}
}

type OwnerView struct {
	SectionState
	FullName string `json:"full_name"`
	Title    string `json:"title"`
	Bio      string `json:"bio"`
	LinkedIn string `json:"linked_in"`
	Email    string `json:"email"`
}

func OwnerConvert(rec dbmodels.DashboardOwner) OwnerView {
	return OwnerView{
		SectionState: sectionStateConvert(rec.BaseModel, rec.Submittable),
		FullName:     rec.FullName,
		Title:        rec.Title,
		Bio:          rec.Bio,
		LinkedIn:     rec.LinkedIn,
		Email:        rec.Email,
	}
}

func validateURL(field string, value *string) error {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	u, err := url.Parse(strings.TrimSpace(*value))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return errors.Errorf("%v must be an http(s) link", field)
	}
	return nil
}
