// Package nav hosts journey surfaces in the Bubble Tea event loop.
package nav

import (
	"fmt"
	"slices"
	"strings"

	"github.com/andri/pocketpay/internal/logger"
	"github.com/andri/pocketpay/pkg/flow"
	"github.com/andri/pocketpay/pkg/tui/components"
	"github.com/andri/pocketpay/pkg/tui/format"
	"github.com/andri/pocketpay/pkg/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Kind is how a layer is shown.
type Kind int

const (
	// KindPush is a full screen on the navigation stack
	KindPush Kind = iota
	// KindSheet is a bottom sheet over the screen beneath it
	KindSheet
	// KindModal is a framed, centered modal covering everything beneath
	KindModal
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPush:
		return "push"
	case KindSheet:
		return "sheet"
	case KindModal:
		return "modal"
	default:
		return "unknown"
	}
}

// Transition records a presentation change, for diagnostics and tests.
type Transition struct {
	Op       string
	Kind     Kind
	Label    string
	Animated bool
}

// LayerInfo describes one layer on the stack.
type LayerInfo struct {
	Kind  Kind
	Label string
}

type layer struct {
	id      uint64
	kind    Kind
	label   string
	surface flow.Surface
	model   tea.Model
}

// Config configures a Stack.
type Config struct {
	// Name identifies the stack in logs
	Name string
	// Dispatcher receives Init commands of presented surfaces (optional)
	Dispatcher *Dispatcher
	// Modal frames modal layers
	Modal components.ModalConfig
}

// Stack is a navigation container. It is a tea.Model that renders its
// layers and a flow.Navigator that journeys present into. Surfaces must be
// tea.Models.
type Stack struct {
	config Config
	layers []*layer
	nextID uint64
	closed bool
	width  int
	height int
	last   Transition
	log    *logger.Logger
}

// NewStack creates an empty, live stack.
func NewStack(cfg Config) *Stack {
	if cfg.Name == "" {
		cfg.Name = "stack"
	}
	return &Stack{
		config: cfg,
		log:    logger.With("component", "nav", "stack", cfg.Name),
	}
}

// Name returns the stack name.
func (s *Stack) Name() string {
	return s.config.Name
}

// Push implements flow.Navigator.
func (s *Stack) Push(surface flow.Surface) *flow.Dismisser {
	return s.add(KindPush, surface)
}

// Present implements flow.Navigator by showing a bottom sheet.
func (s *Stack) Present(surface flow.Surface) *flow.Dismisser {
	return s.add(KindSheet, surface)
}

// PresentModally implements flow.Navigator.
func (s *Stack) PresentModally(surface flow.Surface) *flow.Dismisser {
	return s.add(KindModal, surface)
}

// Alive implements flow.Navigator.
func (s *Stack) Alive() bool {
	return !s.closed
}

// Close tears the stack down. Every layer is dropped, outstanding
// dismissers become no-ops and further presentations are refused.
func (s *Stack) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.layers = nil
	s.log.Debug("stack closed")
}

// Depth returns the number of layers.
func (s *Stack) Depth() int {
	return len(s.layers)
}

// Top returns the surface on top, or nil when empty.
func (s *Stack) Top() flow.Surface {
	if len(s.layers) == 0 {
		return nil
	}
	return s.layers[len(s.layers)-1].surface
}

// Layers describes the layers bottom to top.
func (s *Stack) Layers() []LayerInfo {
	out := make([]LayerInfo, 0, len(s.layers))
	for _, l := range s.layers {
		out = append(out, LayerInfo{Kind: l.kind, Label: l.label})
	}
	return out
}

// LastTransition returns the most recent presentation change.
func (s *Stack) LastTransition() Transition {
	return s.last
}

func (s *Stack) add(kind Kind, surface flow.Surface) *flow.Dismisser {
	if s.closed {
		flow.SoftFailure("nav.present", "stack", s.config.Name, "kind", kind.String(), "reason", "stack closed")
		return nil
	}
	model, ok := surface.(tea.Model)
	if !ok {
		flow.SoftFailure("nav.present", "stack", s.config.Name, "kind", kind.String(),
			"reason", fmt.Sprintf("surface %T is not a tea.Model", surface))
		return nil
	}

	s.nextID++
	l := &layer{
		id:      s.nextID,
		kind:    kind,
		label:   labelFor(surface, s.nextID),
		surface: surface,
		model:   model,
	}
	if kind == KindModal {
		l.model = components.NewModal(s.config.Modal, model)
	}
	s.layers = append(s.layers, l)
	s.resize(l)
	s.config.Dispatcher.Schedule(l.model.Init())

	s.last = Transition{Op: "present", Kind: kind, Label: l.label}
	s.log.Debug("surface presented", "kind", kind.String(), "label", l.label, "depth", len(s.layers))

	id := l.id
	return flow.NewDismisser(l.label, func(animated bool, done func()) {
		s.remove(id, animated)
		done()
	})
}

func (s *Stack) remove(id uint64, animated bool) {
	i := slices.IndexFunc(s.layers, func(l *layer) bool { return l.id == id })
	if i < 0 {
		s.log.Debug("surface already gone", "id", id)
		return
	}
	l := s.layers[i]
	s.layers = slices.Delete(s.layers, i, i+1)
	s.last = Transition{Op: "dismiss", Kind: l.kind, Label: l.label, Animated: animated}
	s.log.Debug("surface dismissed", "kind", l.kind.String(), "label", l.label, "animated", animated, "depth", len(s.layers))
}

func labelFor(surface flow.Surface, id uint64) string {
	if titled, ok := surface.(interface{ Title() string }); ok && titled.Title() != "" {
		return titled.Title()
	}
	name := fmt.Sprintf("%T", surface)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return fmt.Sprintf("%s#%d", name, id)
}

// SetSize implements components.Sizable.
func (s *Stack) SetSize(width, height int) {
	s.width = width
	s.height = height
	for _, l := range s.layers {
		s.resize(l)
	}
}

func (s *Stack) resize(l *layer) {
	if s.width == 0 || s.height == 0 {
		return
	}
	sizable, ok := l.model.(components.Sizable)
	if !ok {
		return
	}
	switch l.kind {
	case KindSheet:
		frameW, _ := styles.StyleSheet.GetFrameSize()
		sizable.SetSize(max(s.width-frameW, 1), max(s.height/2, 1))
	case KindPush:
		frameW, frameH := styles.StyleScreen.GetFrameSize()
		sizable.SetSize(max(s.width-frameW, 1), max(s.height-frameH, 1))
	default:
		sizable.SetSize(s.width, s.height)
	}
}

// Init implements tea.Model
func (s *Stack) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Input goes to the top layer only.
func (s *Stack) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		s.SetSize(size.Width, size.Height)
		return s, nil
	}
	if len(s.layers) == 0 {
		return s, nil
	}

	top := s.layers[len(s.layers)-1]
	updated, cmd := top.model.Update(msg)
	// The update may have dismissed the layer it was delivered to.
	if slices.Contains(s.layers, top) {
		top.model = updated
	}
	return s, cmd
}

// View implements tea.Model
func (s *Stack) View() string {
	return s.render(len(s.layers))
}

func (s *Stack) render(n int) string {
	if n == 0 {
		return ""
	}
	l := s.layers[n-1]
	switch l.kind {
	case KindModal:
		return l.model.View()
	case KindSheet:
		style := styles.StyleSheet
		if s.width > 0 {
			style = style.Width(max(s.width-style.GetHorizontalBorderSize(), 1))
		}
		sheet := style.Render(l.model.View())
		below := s.render(n - 1)
		if s.height > 0 {
			room := s.height - lipgloss.Height(sheet)
			below = format.ClipLines(below, s.width, max(room, 0))
		}
		if below == "" {
			return sheet
		}
		return lipgloss.JoinVertical(lipgloss.Left, below, sheet)
	default:
		return styles.StyleScreen.Render(l.model.View())
	}
}
