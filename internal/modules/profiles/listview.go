package profiles

import (
	"context"
	"errors"

	"github.com/nfrund/househarmony/internal/domain"
)

// Service is the profiles API as seen by the list view.
// *profileapi.Client satisfies it.
type Service interface {
	List(ctx context.Context) ([]domain.Profile, error)
	Create(ctx context.Context, draft domain.Draft) (domain.Profile, error)
	Update(ctx context.Context, id int64, patch domain.Draft) (domain.Profile, error)
	Delete(ctx context.Context, id int64) error
}

var (
	// ErrNotEditing is returned by edit operations when no profile is in edit mode.
	ErrNotEditing = errors.New("no profile is being edited")
	// ErrNoPendingDelete is returned by ConfirmDelete when nothing awaits confirmation.
	ErrNoPendingDelete = errors.New("no profile is awaiting delete confirmation")
)

// EditState is the in-place edit of a single profile. ID never changes; Draft
// holds the unsaved name and icon.
type EditState struct {
	ID    int64
	Draft domain.Draft
}

// State is a read-only snapshot of the view used for rendering.
type State struct {
	Profiles      []domain.Profile
	Draft         domain.Draft
	Editing       *EditState
	PendingDelete *domain.Profile
	Loading       bool
}

// IsEditing reports whether profile id is the one in edit mode.
func (s State) IsEditing(id int64) bool {
	return s.Editing != nil && s.Editing.ID == id
}

// ListView holds the local profile list and the create/edit form state, and
// reconciles the list with the service. The list is only changed after the
// service confirmed the operation; failures leave it as it was and raise a
// notification instead.
//
// ListView is not safe for concurrent use.
type ListView struct {
	service  Service
	notifier Notifier

	profiles      []domain.Profile
	draft         domain.Draft
	editing       *EditState
	pendingDelete *int64
	loading       bool
}

// NewListView creates an empty, unmounted view.
func NewListView(service Service, notifier Notifier) *ListView {
	return &ListView{
		service:  service,
		notifier: notifier,
		profiles: []domain.Profile{},
		draft:    domain.NewDraft(),
	}
}

// Mount loads the profile list from the service, replacing the local list
// wholesale. On failure the list is left untouched.
func (v *ListView) Mount(ctx context.Context) error {
	v.loading = true
	defer func() { v.loading = false }()

	profiles, err := v.service.List(ctx)
	if err != nil {
		v.notifyError(MsgLoadFailed)
		return err
	}
	v.profiles = profiles
	return nil
}

// SetDraftName updates the name typed into the create form.
func (v *ListView) SetDraftName(name string) {
	v.draft.Name = name
}

// SelectDraftIcon picks the create form's icon among domain.IconOptions.
func (v *ListView) SelectDraftIcon(src string) error {
	if !domain.IsValidIcon(src) {
		return domain.ErrInvalidIcon
	}
	v.draft.Icon = src
	return nil
}

// SubmitCreate sends the draft to the service. An empty name is rejected
// locally without any call. On success the new profile is appended and the
// draft reset.
func (v *ListView) SubmitCreate(ctx context.Context) error {
	if err := v.draft.Validate(); err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			v.notifyError(MsgNameRequired)
		} else {
			v.notifyError(MsgInvalidIcon)
		}
		return err
	}

	created, err := v.service.Create(ctx, v.draft)
	if err != nil {
		v.notifyError(MsgCreateFailed)
		return err
	}
	v.profiles = append(v.profiles, created)
	v.draft = domain.NewDraft()
	v.notifySuccess(MsgCreated)
	return nil
}

// BeginEdit puts profile id in edit mode. Any edit in progress on another
// profile is discarded.
func (v *ListView) BeginEdit(id int64) error {
	i := v.indexOf(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	v.editing = &EditState{ID: id, Draft: v.profiles[i].Draft()}
	return nil
}

// SetEditName changes the unsaved name of the profile in edit mode.
func (v *ListView) SetEditName(name string) error {
	if v.editing == nil {
		return ErrNotEditing
	}
	v.editing.Draft.Name = name
	return nil
}

// SelectEditIcon changes the unsaved icon of the profile in edit mode.
func (v *ListView) SelectEditIcon(src string) error {
	if v.editing == nil {
		return ErrNotEditing
	}
	if !domain.IsValidIcon(src) {
		return domain.ErrInvalidIcon
	}
	v.editing.Draft.Icon = src
	return nil
}

// CancelEdit leaves edit mode without saving.
func (v *ListView) CancelEdit() {
	v.editing = nil
}

// SaveEdit sends the edited name and icon to the service. On success the
// matching entry is replaced and edit mode ends; on failure both the list
// and the edit are kept.
func (v *ListView) SaveEdit(ctx context.Context) error {
	if v.editing == nil {
		return ErrNotEditing
	}
	id := v.editing.ID

	updated, err := v.service.Update(ctx, id, v.editing.Draft)
	if err != nil {
		v.notifyError(MsgUpdateFailed)
		return err
	}
	if i := v.indexOf(id); i >= 0 {
		v.profiles[i] = updated
	}
	v.editing = nil
	v.notifySuccess(MsgUpdated)
	return nil
}

// RequestDelete asks for confirmation before deleting profile id.
func (v *ListView) RequestDelete(id int64) error {
	if v.indexOf(id) < 0 {
		return domain.ErrNotFound
	}
	v.pendingDelete = &id
	return nil
}

// CancelDelete dismisses the confirmation step.
func (v *ListView) CancelDelete() {
	v.pendingDelete = nil
}

// ConfirmDelete deletes the profile awaiting confirmation. The confirmation
// closes whatever the outcome; the entry is only removed once the service
// confirmed the delete.
func (v *ListView) ConfirmDelete(ctx context.Context) error {
	if v.pendingDelete == nil {
		return ErrNoPendingDelete
	}
	id := *v.pendingDelete
	v.pendingDelete = nil

	if err := v.service.Delete(ctx, id); err != nil {
		v.notifyError(MsgDeleteFailed)
		return err
	}
	if i := v.indexOf(id); i >= 0 {
		v.profiles = append(v.profiles[:i], v.profiles[i+1:]...)
	}
	if v.editing != nil && v.editing.ID == id {
		v.editing = nil
	}
	v.notifySuccess(MsgDeleted)
	return nil
}

// Profiles returns a copy of the local list.
func (v *ListView) Profiles() []domain.Profile {
	return append([]domain.Profile{}, v.profiles...)
}

// Draft returns the create form state.
func (v *ListView) Draft() domain.Draft {
	return v.draft
}

// Editing returns the edit in progress, or nil.
func (v *ListView) Editing() *EditState {
	if v.editing == nil {
		return nil
	}
	e := *v.editing
	return &e
}

// Loading reports whether the initial fetch is in flight.
func (v *ListView) Loading() bool {
	return v.loading
}

// State returns a snapshot for rendering.
func (v *ListView) State() State {
	s := State{
		Profiles: v.Profiles(),
		Draft:    v.draft,
		Editing:  v.Editing(),
		Loading:  v.loading,
	}
	if v.pendingDelete != nil {
		if i := v.indexOf(*v.pendingDelete); i >= 0 {
			p := v.profiles[i]
			s.PendingDelete = &p
		}
	}
	return s
}

func (v *ListView) indexOf(id int64) int {
	for i, p := range v.profiles {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (v *ListView) notifySuccess(msg string) {
	v.notify(Notification{Level: LevelSuccess, Message: msg})
}

func (v *ListView) notifyError(msg string) {
	v.notify(Notification{Level: LevelError, Message: msg})
}

func (v *ListView) notify(n Notification) {
	if v.notifier != nil {
		v.notifier.Notify(n)
	}
}
