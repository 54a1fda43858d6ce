// Package render draws training sessions for the terminal with lipgloss.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/trainlog/trainlog/internal/domain/activity"
	"github.com/trainlog/trainlog/internal/domain/training"
)

var (
	cardBorder  = lipgloss.Color("#1E1E1E")
	mutedColor  = lipgloss.Color("#8A8A8A")
	errorColor  = lipgloss.Color("#E53935")
	headerColor = lipgloss.Color("#6E4CB0")
)

// Styles holds the lipgloss styles used by a Renderer.
type Styles struct {
	Header lipgloss.Style
	Title  lipgloss.Style
	Body   lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
	Card   lipgloss.Style
	Badge  lipgloss.Style
}

// Renderer renders domain values as styled text. Colour output depends on the
// terminal behind the writer it was created for.
type Renderer struct {
	lg     *lipgloss.Renderer
	styles Styles
}

// New returns a Renderer whose colour profile is detected from w.
func New(w io.Writer) *Renderer {
	lg := lipgloss.NewRenderer(w)
	return &Renderer{
		lg: lg,
		styles: Styles{
			Header: lg.NewStyle().Bold(true).Foreground(headerColor),
			Title:  lg.NewStyle().Bold(true),
			Body:   lg.NewStyle(),
			Muted:  lg.NewStyle().Foreground(mutedColor),
			Error:  lg.NewStyle().Foreground(errorColor),
			Card: lg.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(cardBorder).
				Padding(0, 1),
			Badge: lg.NewStyle().Bold(true).Padding(0, 1),
		},
	}
}

// Header renders a screen title.
func (r *Renderer) Header(text string) string {
	return r.styles.Header.Render(text)
}

// Muted renders secondary text.
func (r *Renderer) Muted(text string) string {
	return r.styles.Muted.Render(text)
}

// Error renders an error line.
func (r *Renderer) Error(text string) string {
	return r.styles.Error.Render(text)
}

// TagBadge renders a tag on its resolved colours. Unknown tags use the default colours.
func (r *Renderer) TagBadge(tag string) string {
	color := training.ResolveColor(tag)
	return r.styles.Badge.
		Background(lipgloss.Color(color.BackgroundColor)).
		Foreground(lipgloss.Color(color.TextColor)).
		Render(tag)
}

// SessionCard renders the one-card summary shown in the session list.
func (r *Renderer) SessionCard(sess training.TrainingSession) string {
	when := lipgloss.JoinVertical(lipgloss.Left,
		r.styles.Title.Render(sess.Date.String()),
		r.styles.Body.Render(sess.Time),
	)
	top := lipgloss.JoinHorizontal(lipgloss.Center, when, "  ", r.TagBadge(sess.Tag))
	meta := r.styles.Muted.Render(fmt.Sprintf("%s · %s · %s",
		plural(len(sess.Exercises), "exercise"), volume(sess.Volume()), sess.ID))
	return r.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left, top, meta))
}

// SessionList renders every session card, or the empty-state message.
func (r *Renderer) SessionList(sessions []training.TrainingSession) string {
	if len(sessions) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			r.styles.Title.Render("No training sessions yet"),
			r.styles.Muted.Render("Add your first session to get started"),
		)
	}
	cards := make([]string, 0, len(sessions))
	for _, sess := range sessions {
		cards = append(cards, r.SessionCard(sess))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// ExerciseCard renders an exercise as "name", "{reps}x{sets}" and "{weight}lb".
func (r *Renderer) ExerciseCard(ex training.Exercise) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		r.styles.Title.Render(ex.Name),
		r.styles.Body.Render(fmt.Sprintf("%dx%d  %dlb", ex.Reps, ex.Sets, ex.Weight)),
		r.styles.Muted.Render(ex.ID),
	)
	return r.styles.Card.Render(body)
}

// SessionDetail renders the detail screen: the session card followed by its exercises.
func (r *Renderer) SessionDetail(sess training.TrainingSession) string {
	parts := []string{r.SessionCard(sess), r.styles.Title.Render("Exercises")}
	if len(sess.Exercises) == 0 {
		parts = append(parts, r.styles.Muted.Render("No exercises added"))
	}
	for _, ex := range sess.Exercises {
		parts = append(parts, r.ExerciseCard(ex))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// TagTable renders each tag as a badge next to its colour codes.
func (r *Renderer) TagTable(tags []string) string {
	width := 0
	for _, tag := range tags {
		width = max(width, lipgloss.Width(r.TagBadge(tag)))
	}
	cell := r.lg.NewStyle().Width(width + 2)

	var sb strings.Builder
	for _, tag := range tags {
		color := training.ResolveColor(tag)
		sb.WriteString(cell.Render(r.TagBadge(tag)))
		sb.WriteString(r.styles.Muted.Render(fmt.Sprintf("%s on %s", color.TextColor, color.BackgroundColor)))
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// Summary renders training statistics.
func (r *Renderer) Summary(sum training.Summary) string {
	last := "never"
	if sum.LastDate != nil {
		last = sum.LastDate.String()
	}
	lines := []string{
		r.styles.Title.Render("Training summary"),
		fmt.Sprintf("Sessions:      %d", sum.Sessions),
		fmt.Sprintf("Exercises:     %d", sum.Exercises),
		fmt.Sprintf("Total volume:  %s", volume(sum.Volume)),
		fmt.Sprintf("Last session:  %s", last),
	}
	for _, tc := range sum.ByTag {
		lines = append(lines, fmt.Sprintf("%s %d", r.TagBadge(tc.Tag), tc.Count))
	}
	return r.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// History renders activity entries, newest first as given.
func (r *Renderer) History(entries []activity.Entry) string {
	if len(entries) == 0 {
		return r.styles.Muted.Render("No activity recorded")
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s  %-17s %s",
			r.styles.Muted.Render(e.CreatedAt.Local().Format("2006-01-02 15:04")),
			string(e.Type),
			e.Summary,
		))
	}
	return strings.Join(lines, "\n")
}

// ValidationErrors renders one line per invalid field.
func (r *Renderer) ValidationErrors(verr *training.ValidationError) string {
	lines := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		lines = append(lines, r.styles.Error.Render(fmt.Sprintf("%s: %s", f.Field, f.Message)))
	}
	return strings.Join(lines, "\n")
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func volume(v int) string {
	return fmt.Sprintf("%d lb", v)
}
