package profiles

import (
	"fmt"

	"github.com/nfrund/househarmony/internal/domain"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// BasePath is where the module mounts its routes.
const BasePath = "/profiles"

func profileURL(id int64, suffix string) string {
	return fmt.Sprintf("%s/%d%s", BasePath, id, suffix)
}

// Page renders the whole profile management screen from a view snapshot.
func Page(s State) g.Node {
	return h.Div(
		h.Class("container max-w-4xl mx-auto p-4 space-y-6"),
		h.Div(
			h.Class("flex items-center justify-between mb-6"),
			h.H1(h.Class("text-2xl font-bold"), g.Text("Profiles")),
			actionButton(BasePath+"/refresh", "Refresh", "btn btn-outline"),
		),
		CreateForm(s.Draft),
		g.If(s.Loading, h.P(h.Class("text-gray-500"), g.Text("Loading profiles…"))),
		g.If(!s.Loading && len(s.Profiles) == 0, h.P(h.ID("profiles-empty"), h.Class("text-gray-500"), g.Text("No profiles yet."))),
		h.Div(
			h.ID("profiles"),
			h.Class("grid gap-4 md:grid-cols-2"),
			g.Map(s.Profiles, func(p domain.Profile) g.Node {
				if s.IsEditing(p.ID) {
					return EditCard(*s.Editing)
				}
				return ProfileCard(p)
			}),
		),
		g.Iff(s.PendingDelete != nil, func() g.Node { return ConfirmDeleteDialog(*s.PendingDelete) }),
	)
}

// CreateForm renders the create form bound to the draft.
func CreateForm(d domain.Draft) g.Node {
	return h.Form(
		h.ID("create-profile"),
		h.Method("post"),
		h.Action(BasePath),
		h.Class("bg-white shadow rounded-xl p-4 space-y-4"),
		h.H2(h.Class("text-lg font-semibold"), g.Text("Create new profile")),
		h.P(h.Class("text-sm text-gray-500"), g.Text("Add a new profile to manage tasks and responsibilities.")),
		h.Div(
			h.Label(h.For("name"), g.Text("Name")),
			h.Input(h.ID("name"), h.Name("name"), h.Type("text"), h.Value(d.Name), h.Placeholder("Profile name"), h.Class("input w-full")),
		),
		h.Div(
			h.Label(g.Text("Icon")),
			IconPicker("icon", d.Icon),
		),
		h.Button(h.Type("submit"), h.Class("btn btn-primary w-full"), g.Text("Create profile")),
	)
}

// IconPicker renders one radio per predefined icon, with selected checked.
func IconPicker(field, selected string) g.Node {
	return h.Div(
		h.Class("flex gap-2 mt-2"),
		g.Map(domain.IconOptions, func(opt domain.IconOption) g.Node {
			class := "p-1 rounded-full cursor-pointer"
			if opt.Src == selected {
				class += " ring-2 ring-primary"
			}
			return h.Label(
				h.Class(class),
				h.Input(h.Type("radio"), h.Name(field), h.Value(opt.Src), h.Class("sr-only"), g.If(opt.Src == selected, h.Checked())),
				avatar(opt.Src, opt.Label),
			)
		}),
	)
}

// ProfileCard renders a profile in read mode.
func ProfileCard(p domain.Profile) g.Node {
	return h.Div(
		h.ID(fmt.Sprintf("profile-%d", p.ID)),
		h.Class("card bg-white shadow rounded-xl p-4 flex items-center justify-between"),
		h.Div(
			h.Class("flex items-center gap-3"),
			avatar(p.Icon, p.Name),
			h.Span(h.Class("font-medium"), g.Text(p.Name)),
		),
		h.Div(
			h.Class("flex gap-2"),
			actionButton(profileURL(p.ID, "/edit"), "Edit", "btn btn-ghost"),
			actionButton(profileURL(p.ID, "/delete"), "Delete", "btn btn-ghost text-red-600"),
		),
	)
}

// EditCard renders the profile in edit mode.
func EditCard(e EditState) g.Node {
	return h.Div(
		h.ID(fmt.Sprintf("profile-%d", e.ID)),
		h.Class("card bg-white shadow rounded-xl p-4"),
		h.Form(
			h.Method("post"),
			h.Action(profileURL(e.ID, "")),
			h.Class("space-y-3"),
			h.Div(
				h.Class("flex items-center gap-3"),
				avatar(e.Draft.Icon, e.Draft.Name),
				h.Input(h.Name("name"), h.Type("text"), h.Value(e.Draft.Name), h.Class("input flex-1"), h.AutoFocus()),
			),
			IconPicker("icon", e.Draft.Icon),
			h.Div(
				h.Class("flex gap-2"),
				h.Button(h.Type("submit"), h.Class("btn btn-primary"), g.Text("Save")),
				h.Button(h.Type("submit"), g.Attr("formaction", BasePath+"/edit/cancel"), h.Class("btn btn-ghost"), g.Text("Cancel")),
			),
		),
	)
}

// ConfirmDeleteDialog is the explicit confirmation step before a delete.
func ConfirmDeleteDialog(p domain.Profile) g.Node {
	return h.Div(
		h.ID("confirm-delete"),
		g.Attr("role", "alertdialog"),
		h.Class("fixed inset-0 bg-black/50 flex items-center justify-center"),
		h.Div(
			h.Class("bg-white rounded-xl p-6 max-w-md space-y-4"),
			h.H2(h.Class("text-lg font-semibold"), g.Text("Are you sure?")),
			h.P(g.Textf("This action cannot be undone. The profile %q will be permanently deleted.", p.Name)),
			h.Div(
				h.Class("flex justify-end gap-2"),
				actionButton(BasePath+"/delete/cancel", "Cancel", "btn btn-ghost"),
				actionButton(profileURL(p.ID, "/delete/confirm"), "Delete", "btn btn-destructive"),
			),
		),
	)
}

func avatar(src, alt string) g.Node {
	return h.Span(
		h.Class("avatar inline-block h-10 w-10 rounded-full overflow-hidden bg-gray-200"),
		h.Img(h.Src(src), h.Alt(alt), h.Class("h-full w-full object-cover")),
	)
}

// actionButton is a one-button form, so every state change is a POST.
func actionButton(action, label, class string) g.Node {
	return h.Form(
		h.Method("post"),
		h.Action(action),
		h.Class("inline"),
		h.Button(h.Type("submit"), h.Class(class), g.Text(label)),
	)
}
