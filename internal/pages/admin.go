package pages

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/artisanfinder/web/internal/components"
	"github.com/artisanfinder/web/internal/domain"
	"github.com/artisanfinder/web/internal/events"
	apperrors "github.com/artisanfinder/web/pkg/util/errorutil"
)

// ArtisanDraft holds the admin form inputs.
type ArtisanDraft struct {
	Name        string `json:"name"`
	Skill       string `json:"skill"`
	Location    string `json:"location"`
	Phone       string `json:"phone"`
	Experience  string `json:"experience"`
	Description string `json:"description"`
}

var requiredArtisanFields = []string{"name", "skill", "location", "phone", "experience"}

func (d *ArtisanDraft) fields() fieldSet {
	return fieldSet{
		"name":        &d.Name,
		"skill":       &d.Skill,
		"location":    &d.Location,
		"phone":       &d.Phone,
		"experience":  &d.Experience,
		"description": &d.Description,
	}
}

func draftFrom(a domain.Artisan) ArtisanDraft {
	return ArtisanDraft{
		Name:        a.Name,
		Skill:       a.Skill,
		Location:    a.Location,
		Phone:       a.Phone,
		Experience:  a.Experience,
		Description: a.Description,
	}
}

// applyTo replaces the editable fields of base. Rating, jobs and avatar are kept.
func (d ArtisanDraft) applyTo(base domain.Artisan) domain.Artisan {
	base.Name = strings.TrimSpace(d.Name)
	base.Skill = strings.TrimSpace(d.Skill)
	base.Location = strings.TrimSpace(d.Location)
	base.Phone = strings.TrimSpace(d.Phone)
	base.Experience = strings.TrimSpace(d.Experience)
	base.Description = strings.TrimSpace(d.Description)
	return base
}

// DraftView is the admin dialog view.
type DraftView struct {
	Open         bool         `json:"open"`
	Editing      bool         `json:"editing"`
	EditingID    int          `json:"editingId,omitempty"`
	Title        string       `json:"title"`
	SubmitLabel  string       `json:"submitLabel"`
	Fields       ArtisanDraft `json:"fields"`
	Missing      []string     `json:"missing,omitempty"`
	Submitting   bool         `json:"submitting"`
	SkillOptions []string     `json:"skillOptions"`
}

// AdminSnapshot is the admin dashboard view.
type AdminSnapshot struct {
	Status   Status                   `json:"status"`
	Error    string                   `json:"error,omitempty"`
	Total    int                      `json:"total"`
	Artisans []components.ArtisanCard `json:"artisans"`
	Empty    bool                     `json:"empty"`
	Draft    DraftView                `json:"draft"`
	Notice   *Notice                  `json:"notice,omitempty"`
}

// AdminPage lists every artisan and edits them through a draft.
// The draft is independent of the list loading state.
type AdminPage struct {
	mu         sync.Mutex
	artisans   ArtisanStore
	publisher  events.Publisher
	logger     *zap.Logger
	state      loadState
	list       []domain.Artisan
	draft      ArtisanDraft
	editing    *domain.Artisan
	open       bool
	missing    []string
	submitting bool
	notice     *Notice
}

// NewAdminPage builds the admin dashboard.
func NewAdminPage(artisans ArtisanStore, publisher events.Publisher, logger *zap.Logger) *AdminPage {
	if publisher == nil {
		publisher = events.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminPage{
		artisans:  artisans,
		publisher: publisher,
		logger:    logger,
		state:     newLoadState(),
	}
}

// Dispatch handles list loading, draft editing, submit and delete.
func (p *AdminPage) Dispatch(ctx context.Context, cmd Command) error {
	switch c := cmd.(type) {
	case Mount:
		p.mu.Lock()
		p.notice = nil
		p.mu.Unlock()
		p.load(ctx)
	case Retry:
		p.load(ctx)
	case StartCreate:
		p.mu.Lock()
		p.resetDraft()
		p.open = true
		p.mu.Unlock()
	case StartEdit:
		return p.startEdit(c.ID)
	case SetField:
		p.mu.Lock()
		defer p.mu.Unlock()
		if err := p.draft.fields().set(c.Field, c.Value); err != nil {
			return err
		}
		p.open = true
		p.missing = nil
	case CancelEdit:
		p.mu.Lock()
		p.resetDraft()
		p.mu.Unlock()
	case SubmitForm:
		return p.submit(ctx, c.Token)
	case DeleteArtisan:
		return p.delete(ctx, c)
	default:
		return errUnsupported("admin", cmd)
	}
	return nil
}

func (p *AdminPage) load(ctx context.Context) {
	p.mu.Lock()
	seq := p.state.begin()
	p.mu.Unlock()

	list, err := p.artisans.ListArtisans(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state.stale(seq) {
		return
	}
	if err != nil {
		p.state.fail(MsgFetchArtisans)
		p.notice = errorNotice(MsgFetchArtisans)
		return
	}
	p.list = list
	p.state.succeed()
}

func (p *AdminPage) startEdit(id int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, a := range p.list {
		if a.ID == id {
			record := a
			p.resetDraft()
			p.draft = draftFrom(record)
			p.editing = &record
			p.open = true
			return nil
		}
	}
	return apperrors.NewNotFound("artisan", map[string]any{"id": id})
}

func (p *AdminPage) resetDraft() {
	p.draft = ArtisanDraft{}
	p.editing = nil
	p.open = false
	p.missing = nil
}

// submit creates or updates depending on whether a record is being edited, then
// reloads the whole list.
func (p *AdminPage) submit(ctx context.Context, token string) error {
	p.mu.Lock()
	if p.submitting {
		p.mu.Unlock()
		return apperrors.NewConflict("a save is already in progress", nil)
	}
	if missing := p.draft.fields().missing(requiredArtisanFields...); len(missing) > 0 {
		p.missing = missing
		p.open = true
		p.mu.Unlock()
		return errMissingFields(missing)
	}

	base := domain.Artisan{}
	editingID := 0
	if p.editing != nil {
		base = *p.editing
		editingID = p.editing.ID
	}
	record := p.draft.applyTo(base)
	p.submitting = true
	p.notice = nil
	p.mu.Unlock()

	var saved *domain.Artisan
	var err error
	if editingID != 0 {
		saved, err = p.artisans.UpdateArtisan(ctx, editingID, record, token)
	} else {
		saved, err = p.artisans.CreateArtisan(ctx, record, token)
	}

	p.mu.Lock()
	p.submitting = false
	if err != nil {
		p.notice = errorNotice(MsgSaveArtisan)
		p.mu.Unlock()
		return nil
	}
	eventType := events.EventArtisanCreated
	text := "Artisan added successfully"
	if editingID != 0 {
		eventType = events.EventArtisanUpdated
		text = "Artisan updated successfully"
	}
	p.notice = successNotice(text)
	p.resetDraft()
	p.mu.Unlock()

	if saved == nil {
		saved = &record
	}
	savedID := saved.ID
	if savedID == 0 {
		savedID = editingID
	}
	p.publish(ctx, events.New(eventType, savedID, events.ArtisanChangedPayload{
		Name: saved.Name, Skill: saved.Skill, Location: saved.Location,
	}))

	p.load(ctx)
	return nil
}

func (p *AdminPage) delete(ctx context.Context, c DeleteArtisan) error {
	if c.ID <= 0 {
		return apperrors.NewValidationError("invalid artisan id", map[string]any{"id": c.ID})
	}
	p.mu.Lock()
	p.notice = nil
	p.mu.Unlock()

	if err := p.artisans.DeleteArtisan(ctx, c.ID, c.Token); err != nil {
		p.mu.Lock()
		p.notice = errorNotice(MsgDeleteArtisan)
		p.mu.Unlock()
		return nil
	}

	p.mu.Lock()
	if p.editing != nil && p.editing.ID == c.ID {
		p.resetDraft()
	}
	p.notice = successNotice("Artisan deleted successfully")
	p.mu.Unlock()

	p.publish(ctx, events.New(events.EventArtisanDeleted, c.ID, nil))
	p.load(ctx)
	return nil
}

func (p *AdminPage) publish(ctx context.Context, e events.Event) {
	if err := p.publisher.Publish(ctx, e); err != nil {
		p.logger.Warn("publish admin event", zap.String("type", string(e.Type)), zap.Error(err))
	}
}

// Snapshot copies the current view.
func (p *AdminPage) Snapshot() AdminSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	draft := DraftView{
		Open:         p.open,
		Editing:      p.editing != nil,
		Title:        "Add New Artisan",
		SubmitLabel:  "Add Artisan",
		Fields:       p.draft,
		Missing:      append([]string(nil), p.missing...),
		Submitting:   p.submitting,
		SkillOptions: append([]string(nil), domain.Skills[1:]...),
	}
	if p.editing != nil {
		draft.EditingID = p.editing.ID
		draft.Title = "Edit Artisan"
		draft.SubmitLabel = "Update Artisan"
	}

	return AdminSnapshot{
		Status:   p.state.status,
		Error:    p.state.errMsg,
		Total:    len(p.list),
		Artisans: components.NewArtisanCards(p.list),
		Empty:    p.state.status == StatusLoaded && len(p.list) == 0,
		Draft:    draft,
		Notice:   p.notice.clone(),
	}
}
