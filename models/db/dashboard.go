package dbmodels

import (
	"strings"
	"time"

	"dashboard-approval-backend/models"
)

// SubmittableEntity is a draft dashboard section that goes through review.
type SubmittableEntity interface {
	GetID() string
	GetCampaignID() string
	GetStatus() models.DashboardStatus
	GetSubmittedBy() string
	EntityType() models.EntityType
	HasContent() bool
	Submit(userID string, now time.Time) error
	Approve(adminID, comment string, now time.Time) error
	Reject(adminID, comment string, now time.Time) error
	CanEdit(userID string) bool
}

// Submittable holds the lifecycle columns shared by every draft section.
type Submittable struct {
	CampaignID  string                 `gorm:"type:varchar(36);index;not null" json:"campaign_id"`
	Status      models.DashboardStatus `gorm:"type:varchar(16);index" json:"status"`
	SubmittedAt *time.Time             `json:"submitted_at"`
	SubmittedBy string                 `gorm:"type:varchar(36)" json:"submitted_by"`
	ReviewedAt  *time.Time             `json:"reviewed_at"`
	ReviewedBy  string                 `gorm:"type:varchar(36)" json:"reviewed_by"`
	Comment     string                 `json:"comment"`
}

func newSubmittable(campaignID string) (Submittable, error) {
	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		return Submittable{}, models.NewValidationError("campaign id is required")
	}
	return Submittable{
		CampaignID: campaignID,
		Status:     models.DashboardStatusDraft,
	}, nil
}

func (s Submittable) GetCampaignID() string {
	return s.CampaignID
}

func (s Submittable) GetStatus() models.DashboardStatus {
	return s.Status
}

func (s Submittable) GetSubmittedBy() string {
	return s.SubmittedBy
}

func (s Submittable) CanEdit(userID string) bool {
	return s.Status == models.DashboardStatusPending && s.SubmittedBy == userID
}

func (s Submittable) ensureEditable(t models.EntityType) error {
	if s.Status == models.DashboardStatusApproved {
		return models.NewConflictError("%s is approved and can no longer be changed", t.ToHuman())
	}
	return nil
}

func (s *Submittable) submit(t models.EntityType, hasContent bool, userID string, now time.Time) error {
	if s.Status == models.DashboardStatusApproved {
		return models.NewConflictError("%s is already approved", t.ToHuman())
	}
	if !hasContent {
		return models.NewValidationError("%s has no content to submit", t.ToHuman())
	}
	s.Status = models.DashboardStatusPending
	s.SubmittedBy = userID
	s.SubmittedAt = &now
	return nil
}

func (s *Submittable) approve(t models.EntityType, adminID, comment string, now time.Time) error {
	if s.Status == models.DashboardStatusApproved {
		return models.NewConflictError("%s is already approved", t.ToHuman())
	}
	s.Status = models.DashboardStatusApproved
	s.ReviewedBy = adminID
	s.ReviewedAt = &now
	s.Comment = strings.TrimSpace(comment)
	return nil
}

func (s *Submittable) reject(adminID, comment string, now time.Time) error {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return models.NewValidationError("Comment is required when rejecting")
	}
	s.Status = models.DashboardStatusRejected
	s.ReviewedBy = adminID
	s.ReviewedAt = &now
	s.Comment = comment
	return nil
}

func anyContent(values ...string) bool {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return true
		}
	}
	return false
}

func merge(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

type CampaignInfoPatch struct {
	Milestones    *string
	InvestorPitch *string
	PitchVideoURL *string
}

type DashboardCampaignInfo struct {
	BaseModel
	Submittable
	Milestones    string `json:"milestones"`
	InvestorPitch string `json:"investor_pitch"`
	PitchVideoURL string `json:"pitch_video_url"`
}

func (DashboardCampaignInfo) TableName() string {
	return "dashboard_campaign_infos"
}

func NewDashboardCampaignInfo(campaignID string, patch CampaignInfoPatch) (*DashboardCampaignInfo, error) {
	base, err := newSubmittable(campaignID)
	if err != nil {
		return nil, err
	}
	rec := &DashboardCampaignInfo{Submittable: base}
	rec.apply(patch)
	return rec, nil
}

func (r *DashboardCampaignInfo) Update(patch CampaignInfoPatch, now time.Time) error {
	if err := r.ensureEditable(r.EntityType()); err != nil {
		return err
	}
	r.apply(patch)
	r.UpdatedAt = now
	return nil
}

func (r *DashboardCampaignInfo) apply(patch CampaignInfoPatch) {
	merge(&r.Milestones, patch.Milestones)
	merge(&r.InvestorPitch, patch.InvestorPitch)
	merge(&r.PitchVideoURL, patch.PitchVideoURL)
}

func (r *DashboardCampaignInfo) EntityType() models.EntityType {
	return models.EntityCampaignInfo
}

func (r *DashboardCampaignInfo) HasContent() bool {
	return anyContent(r.Milestones, r.InvestorPitch, r.PitchVideoURL)
}

func (r *DashboardCampaignInfo) Submit(userID string, now time.Time) error {
	return r.submit(r.EntityType(), r.HasContent(), userID, now)
}

func (r *DashboardCampaignInfo) Approve(adminID, comment string, now time.Time) error {
	return r.approve(r.EntityType(), adminID, comment, now)
}

func (r *DashboardCampaignInfo) Reject(adminID, comment string, now time.Time) error {
	return r.reject(adminID, comment, now)
}

type CampaignSummaryPatch struct {
	Summary *string
	TagLine *string
}

type DashboardCampaignSummary struct {
	BaseModel
	Submittable
	Summary string `json:"summary"`
	TagLine string `gorm:"type:varchar(512)" json:"tag_line"`
}

func (DashboardCampaignSummary) TableName() string {
	return "dashboard_campaign_summaries"
}

func NewDashboardCampaignSummary(campaignID string, patch CampaignSummaryPatch) (*DashboardCampaignSummary, error) {
	base, err := newSubmittable(campaignID)
	if err != nil {
		return nil, err
	}
	rec := &DashboardCampaignSummary{Submittable: base}
	rec.apply(patch)
	return rec, nil
}

func (r *DashboardCampaignSummary) Update(patch CampaignSummaryPatch, now time.Time) error {
	if err := r.ensureEditable(r.EntityType()); err != nil {
		return err
	}
	r.apply(patch)
	r.UpdatedAt = now
	return nil
}

func (r *DashboardCampaignSummary) apply(patch CampaignSummaryPatch) {
	merge(&r.Summary, patch.Summary)
	merge(&r.TagLine, patch.TagLine)
}

func (r *DashboardCampaignSummary) EntityType() models.EntityType {
	return models.EntityCampaignSummary
}

func (r *DashboardCampaignSummary) HasContent() bool {
	return anyContent(r.Summary, r.TagLine)
}

func (r *DashboardCampaignSummary) Submit(userID string, now time.Time) error {
	return r.submit(r.EntityType(), r.HasContent(), userID, now)
}

func (r *DashboardCampaignSummary) Approve(adminID, comment string, now time.Time) error {
	return r.approve(r.EntityType(), adminID, comment, now)
}

func (r *DashboardCampaignSummary) Reject(adminID, comment string, now time.Time) error {
	return r.reject(adminID, comment, now)
}

type SocialsPatch struct {
	Website   *string
	LinkedIn  *string
	Facebook  *string
	Twitter   *string
	Instagram *string
	Youtube   *string
}

type DashboardSocials struct {
	BaseModel
	Submittable
	Website   string `json:"website"`
	LinkedIn  string `json:"linked_in"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	Youtube   string `json:"youtube"`
}

func (DashboardSocials) TableName() string {
	return "dashboard_socials"
}

func NewDashboardSocials(campaignID string, patch SocialsPatch) (*DashboardSocials, error) {
	base, err := newSubmittable(campaignID)
	if err != nil {
		return nil, err
	}
	rec := &DashboardSocials{Submittable: base}
	rec.apply(patch)
	return rec, nil
}

func (r *DashboardSocials) Update(patch SocialsPatch, now time.Time) error {
	if err := r.ensureEditable(r.EntityType()); err != nil {
		return err
	}
	r.apply(patch)
	r.UpdatedAt = now
	return nil
}

func (r *DashboardSocials) apply(patch SocialsPatch) {
	merge(&r.Website, patch.Website)
	merge(&r.LinkedIn, patch.LinkedIn)
	merge(&r.Facebook, patch.Facebook)
	merge(&r.Twitter, patch.Twitter)
	merge(&r.Instagram, patch.Instagram)
	merge(&r.Youtube, patch.Youtube)
}

func (r *DashboardSocials) EntityType() models.EntityType {
	return models.EntitySocials
}

func (r *DashboardSocials) HasContent() bool {
	return anyContent(r.Website, r.LinkedIn, r.Facebook, r.Twitter, r.Instagram, r.Youtube)
}

func (r *DashboardSocials) Submit(userID string, now time.Time) error {
	return r.submit(r.EntityType(), r.HasContent(), userID, now)
}

func (r *DashboardSocials) Approve(adminID, comment string, now time.Time) error {
	return r.approve(r.EntityType(), adminID, comment, now)
}

func (r *DashboardSocials) Reject(adminID, comment string, now time.Time) error {
	return r.reject(adminID, comment, now)
}

type OwnerPatch struct {
	FullName *string
	Title    *string
	Bio      *string
	LinkedIn *string
	Email    *string
}

// DashboardOwner is one draft owner. A campaign may have many.
type DashboardOwner struct {
	BaseModel
	Submittable
	FullName string `gorm:"type:varchar(255)" json:"full_name"`
	Title    string `gorm:"type:varchar(255)" json:"title"`
	Bio      string `json:"bio"`
	LinkedIn string `json:"linked_in"`
	Email    string `gorm:"type:varchar(255)" json:"email"`
}

func (DashboardOwner) TableName() string {
	return "dashboard_owners"
}

func NewDashboardOwner(campaignID string, patch OwnerPatch) (*DashboardOwner, error) {
	base, err := newSubmittable(campaignID)
	if err != nil {
		return nil, err
	}
	rec := &DashboardOwner{Submittable: base}
	rec.apply(patch)
	return rec, nil
}

func (r *DashboardOwner) Update(patch OwnerPatch, now time.Time) error {
	if err := r.ensureEditable(r.EntityType()); err != nil {
		return err
	}
	r.apply(patch)
	r.UpdatedAt = now
	return nil
}

func (r *DashboardOwner) apply(patch OwnerPatch) {
	merge(&r.FullName, patch.FullName)
	merge(&r.Title, patch.Title)
	merge(&r.Bio, patch.Bio)
	merge(&r.LinkedIn, patch.LinkedIn)
	merge(&r.Email, patch.Email)
}

func (r *DashboardOwner) EntityType() models.EntityType {
	return models.EntityOwners
}

func (r *DashboardOwner) HasContent() bool {
	return anyContent(r.FullName, r.Title, r.Bio, r.LinkedIn, r.Email)
}

func (r *DashboardOwner) Submit(userID string, now time.Time) error {
	return r.submit(r.EntityType(), r.HasContent(), userID, now)
}

func (r *DashboardOwner) Approve(adminID, comment string, now time.Time) error {
	return r.approve(r.EntityType(), adminID, comment, now)
}

func (r *DashboardOwner) Reject(adminID, comment string, now time.Time) error {
	return r.reject(adminID, comment, now)
}
