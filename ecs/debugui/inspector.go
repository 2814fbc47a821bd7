package debugui

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/shapeinvaders/ecs"
)

// EntityInfo is one row of the entity browser.
type EntityInfo struct {
	ID         ecs.EntityId
	Archetype  uint32
	Components []string
}

// ListEntities returns up to limit live entities of world, grouped by
// archetype in creation order. A limit <= 0 means no limit.
func ListEntities(world *ecs.Storage, limit int) []EntityInfo {
	var out []EntityInfo
	for _, archetype := range world.Archetypes() {
		names := make([]string, len(archetype.Types()))
		for i, t := range archetype.Types() {
			names[i] = t.String()
		}
		names = shortNames(names)

		for id := range archetype.Iter() {
			if limit > 0 && len(out) >= limit {
				return out
			}
			out = append(out, EntityInfo{ID: id, Archetype: archetype.ID(), Components: names})
		}
	}
	return out
}

type fieldInfo struct {
	name  string
	index int
	kind  reflect.Kind
}

// fieldCache remembers the editable fields of each component type.
type fieldCache map[reflect.Type][]fieldInfo

func (c fieldCache) fields(t reflect.Type) []fieldInfo {
	if cached, ok := c[t]; ok {
		return cached
	}

	var fields []fieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			fields = append(fields, fieldInfo{name: f.Name, index: i, kind: f.Type.Kind()})
		}
	}
	c[t] = fields
	return fields
}

// Inspector lists the entities of a world and edits the components of the
// selected one in place.
type Inspector struct {
	world    *ecs.Storage
	pageSize int
	filter   string
	selected ecs.EntityId
	picked   bool
	cache    fieldCache
}

func NewInspector(world *ecs.Storage, pageSize int) *Inspector {
	return &Inspector{world: world, pageSize: pageSize, cache: fieldCache{}}
}

// Select focuses the component editor on id.
func (in *Inspector) Select(id ecs.EntityId) {
	in.selected = id
	in.picked = true
}

// Selected returns the focused entity, if it is still alive.
func (in *Inspector) Selected() (ecs.EntityId, bool) {
	if !in.picked || !in.world.Alive(in.selected) {
		return 0, false
	}
	return in.selected, true
}

// Window wraps the inspector for a WindowSystem.
func (in *Inspector) Window() Window {
	return Window{
		Title:  "Entities",
		Pos:    imgui.NewVec2(360, 10),
		Size:   imgui.NewVec2(380, 460),
		Render: in.render,
	}
}

func (in *Inspector) render() {
	imgui.InputTextWithHint("##filter", "Filter components...", &in.filter, imgui.InputTextFlagsNone, nil)

	const flags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("entities", 2, flags, imgui.NewVec2(0, 200), 0) {
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()

		needle := strings.ToLower(in.filter)
		for _, row := range ListEntities(in.world, in.pageSize) {
			joined := strings.Join(row.Components, ", ")
			if needle != "" && !strings.Contains(strings.ToLower(joined), needle) {
				continue
			}
			imgui.TableNextRow()
			imgui.TableNextColumn()
			isSelected := in.picked && in.selected == row.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", row.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				in.Select(row.ID)
			}
			imgui.TableNextColumn()
			imgui.Text(joined)
		}
		imgui.EndTable()
	}

	imgui.Separator()
	id, ok := in.Selected()
	if !ok {
		imgui.Text("No entity selected")
		return
	}

	archetype := in.world.GetArchetypeById(id.ArchetypeId())
	imgui.Text(fmt.Sprintf("Entity %d in archetype 0x%X", id, id.ArchetypeId()))
	for _, t := range archetype.Types() {
		component := in.world.GetComponent(id, t)
		if component == nil {
			continue
		}
		if imgui.TreeNodeStr(t.String()) {
			in.editComponent(reflect.ValueOf(component).Elem())
			imgui.TreePop()
		}
	}
}

func (in *Inspector) editComponent(value reflect.Value) {
	for _, f := range in.cache.fields(value.Type()) {
		field := value.Field(f.index)
		label := fmt.Sprintf("%s##%d", f.name, f.index)

		switch f.kind {
		case reflect.Float32, reflect.Float64:
			v := float32(field.Float())
			if imgui.InputFloat(label, &v) {
				field.SetFloat(float64(v))
			}
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			v := int32(field.Int())
			if imgui.InputInt(label, &v) {
				field.SetInt(int64(v))
			}
		case reflect.Bool:
			v := field.Bool()
			if imgui.Checkbox(label, &v) {
				field.SetBool(v)
			}
		default:
			imgui.Text(fmt.Sprintf("%s: %v", f.name, field.Interface()))
		}
	}
}
