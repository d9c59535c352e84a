package dashboard

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/alexisbeaulieu97/atlas/internal/chat"
	"github.com/alexisbeaulieu97/atlas/internal/navigation"
	"github.com/alexisbeaulieu97/atlas/internal/tui/components"
)

func TestUpdate_WindowSizeMsg(t *testing.T) {
	t.Parallel()

	m := send(t, newTestModel(t, Deps{}), tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 120, m.help.Width)
}

func TestUpdate_TabKeysDriveController(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Deps{})

	m = send(t, m, runes("2"), runes("3"))
	require.Equal(t, navigation.TabAtlas, m.Tabs().Active())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	state := m.Tabs().State()
	assert.Equal(t, navigation.TabVision, state.Active)
	prev, ok := state.Previous()
	require.True(t, ok)
	assert.Equal(t, navigation.TabHome, prev)
	assert.Equal(t, []navigation.Panel{navigation.TabHome}, state.History)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc}, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, navigation.TabHome, m.Tabs().Active())
	assert.False(t, m.Tabs().CanGoBack())
}

func TestUpdate_TabCyclingWraps(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Deps{})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, navigation.TabChat, m.Tabs().Active())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, navigation.TabHome, m.Tabs().Active())
	assert.Equal(t, 2, m.Transitions())
}

func TestUpdate_SelectingActiveTabDoesNotCount(t *testing.T) {
	t.Parallel()

	m := send(t, newTestModel(t, Deps{}), runes("1"), runes("9"))
	assert.Equal(t, navigation.TabHome, m.Tabs().Active())
	assert.Zero(t, m.Transitions())
	assert.False(t, m.Tabs().CanGoBack())
}

func TestUpdate_FreshMarkerLastsOneKey(t *testing.T) {
	t.Parallel()

	m := send(t, newTestModel(t, Deps{}), runes("2"))
	assert.True(t, m.fresh())

	m = send(t, m, runes("?"))
	assert.False(t, m.fresh())
	assert.True(t, m.help.ShowAll)

	m = send(t, m, runes("?"))
	assert.False(t, m.help.ShowAll)
}

func TestUpdate_VisionSectionsAreRecorded(t *testing.T) {
	t.Parallel()

	store := &recordingStore{}
	m := newTestModel(t, Deps{Store: store})

	m = send(t, m, runes("2"), runes("j"), tea.KeyMsg{Type: tea.KeyRight}, runes("j"), runes("k"))
	assert.Equal(t, navigation.Panel("pricing"), m.Sections().Active())
	assert.Equal(t, []int{1, 2, 0, 2}, store.saved)
	assert.Equal(t, navigation.TabVision, m.Tabs().Active(), "section moves leave the tab controller alone")
	assert.Equal(t, 1, m.Transitions())
}

func TestUpdate_SectionMovesGoThroughIndicator(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Deps{})
	m = send(t, m, runes("2"), runes("j"))
	require.Equal(t, navigation.Panel("features"), m.Sections().Active())

	m.indicator = components.NewSectionIndicator(nil)
	m = send(t, m, runes("j"))
	assert.Equal(t, navigation.Panel("features"), m.Sections().Active(), "an indicator without markers selects nothing")
}

func TestUpdate_AppGridOpensTarget(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Deps{})
	m = send(t, m, runes("3"), runes("l"))
	assert.Equal(t, 1, m.gridCursor)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, navigation.TabVision, m.Tabs().Active())
	prev, _ := m.Tabs().Previous()
	assert.Equal(t, navigation.TabAtlas, prev)
}

func TestUpdate_ChatComposeAndReply(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Deps{})
	greeting := m.Conversation().Len()

	m = send(t, m, runes("4"), runes("i"))
	require.Equal(t, ModeCompose, m.Mode())

	m = send(t, m, runes("q2 ok?"))
	assert.Equal(t, navigation.TabChat, m.Tabs().Active(), "typed keys go to the input")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.NotNil(t, cmd)
	require.Equal(t, greeting+1, m.Conversation().Len())
	last := m.Conversation().Messages()[greeting]
	assert.Equal(t, "q2 ok?", last.Body)
	assert.Equal(t, chat.Outgoing, last.Direction)
	assert.True(t, m.Conversation().Typing())
	assert.Contains(t, m.View(), "is typing")
	assert.Empty(t, m.compose.Value())

	m = send(t, m, ReplyDueMsg{})
	assert.False(t, m.Conversation().Typing())
	msgs := m.Conversation().Messages()
	assert.Equal(t, chat.Incoming, msgs[len(msgs)-1].Direction)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, greeting+2, m.Conversation().Len(), "blank input is not sent")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ModeBrowse, m.Mode())
	assert.Equal(t, navigation.TabChat, m.Tabs().Active())
}

func TestUpdate_ChatRepliesToEveryMessage(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Deps{})
	greeting := m.Conversation().Len()

	m = send(t, m, runes("4"), runes("i"),
		runes("one"), tea.KeyMsg{Type: tea.KeyEnter},
		runes("two"), tea.KeyMsg{Type: tea.KeyEnter},
	)
	require.Equal(t, greeting+2, m.Conversation().Len())
	require.Equal(t, 2, m.Conversation().Pending())

	m = send(t, m, ReplyDueMsg{})
	assert.True(t, m.Conversation().Typing(), "the second message is still waiting")

	m = send(t, m, ReplyDueMsg{})
	assert.False(t, m.Conversation().Typing())

	var incoming int
	for _, msg := range m.Conversation().Messages()[greeting:] {
		if msg.Direction == chat.Incoming {
			incoming++
		}
	}
	assert.Equal(t, 2, incoming)
}

func TestUpdate_PaletteJumpsToSection(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Deps{})
	m = send(t, m, runes("/"))
	require.Equal(t, ModePalette, m.Mode())

	m = send(t, m, runes("pric"))
	require.NotEmpty(t, m.paletteResults)
	assert.Contains(t, m.View(), "Pricing")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ModeBrowse, m.Mode())
	assert.Equal(t, navigation.TabVision, m.Tabs().Active())
	assert.Equal(t, navigation.Panel("pricing"), m.Sections().Active())
}

func TestUpdate_PaletteJumpsToAppTarget(t *testing.T) {
	t.Parallel()

	m := send(t, newTestModel(t, Deps{}), runes("/"), runes("inbox"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, navigation.TabChat, m.Tabs().Active())
}

func TestUpdate_PaletteWithoutMatchShowsError(t *testing.T) {
	t.Parallel()

	m := send(t, newTestModel(t, Deps{}), runes("/"), runes("zzzzzzzz"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.showError)
	assert.Contains(t, m.View(), "Nothing matches")
	assert.Equal(t, navigation.TabHome, m.Tabs().Active())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showError)
}

func TestUpdate_PaletteEscCancels(t *testing.T) {
	t.Parallel()

	m := send(t, newTestModel(t, Deps{}), runes("/"), runes("chat"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ModeBrowse, m.Mode())
	assert.Equal(t, navigation.TabHome, m.Tabs().Active())
}

func TestUpdate_Quit(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Deps{})
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestUpdate_ErrorMessages(t *testing.T) {
	t.Parallel()

	m := send(t, newTestModel(t, Deps{}), ErrorMsg{Message: "boom"})
	assert.True(t, m.showError)
	assert.Equal(t, "boom", m.errorMsg)

	m = send(t, m, ClearErrorMsg{})
	assert.False(t, m.showError)
}

func TestUpdate_TracerRecordsBothScopes(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	m := newTestModel(t, Deps{Tracer: tp.Tracer("test")})
	send(t, m, runes("2"), runes("j"))

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	scopes := make([]string, 0, len(spans))
	for _, span := range spans {
		for _, kv := range span.Attributes() {
			if kv.Key == attribute.Key("atlas.scope") {
				scopes = append(scopes, kv.Value.AsString())
			}
		}
	}
	assert.Equal(t, []string{"tabs", "sections"}, scopes)
}
