package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginModel is the email/password screen shown whenever no session is live.
type loginModel struct {
	email    textinput.Model
	password textinput.Model
	focus    int
	busy     bool
	errMsg   string
	styles   Styles
	msgs     *Messages
}

func newLoginModel(styles Styles, msgs *Messages) loginModel {
	email := textinput.New()
	email.Placeholder = "admin@example.com"
	email.CharLimit = 128
	email.Focus()

	password := textinput.New()
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128

	return loginModel{email: email, password: password, styles: styles, msgs: msgs}
}

func (m *loginModel) reset() {
	m.password.SetValue("")
	m.busy = false
	m.errMsg = ""
}

// update returns true when the operator submitted the form.
func (m *loginModel) update(msg tea.Msg) (tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, false
	}
	switch keyMsg.String() {
	case "tab", "shift+tab", "up", "down":
		m.focus = 1 - m.focus
		if m.focus == 0 {
			m.email.Focus()
			m.password.Blur()
		} else {
			m.email.Blur()
			m.password.Focus()
		}
		return nil, false
	case "enter":
		if m.busy {
			return nil, false
		}
		m.busy = true
		m.errMsg = ""
		return nil, true
	}
	var cmd tea.Cmd
	if m.focus == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return cmd, false
}

func (m *loginModel) fail(errMsg string) {
	m.busy = false
	m.errMsg = errMsg
}

func (m *loginModel) view(checkingSession bool) string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(m.msgs.Get("login.title")))
	sb.WriteString("\n\n")
	if checkingSession {
		sb.WriteString(m.msgs.Get("login.checking"))
		sb.WriteString("\n")
		return sb.String()
	}
	if m.errMsg != "" {
		sb.WriteString(m.styles.Error.Render(m.errMsg))
		sb.WriteString("\n\n")
	}
	sb.WriteString(m.styles.Label.Render(m.msgs.Get("login.email")+":") + " " + m.email.View() + "\n")
	sb.WriteString(m.styles.Label.Render(m.msgs.Get("login.password")+":") + " " + m.password.View() + "\n\n")
	if m.busy {
		sb.WriteString(m.styles.Muted.Render(m.msgs.Get("common.loading")))
	} else {
		sb.WriteString(m.styles.Muted.Render("enter → " + m.msgs.Get("login.submit")))
	}
	sb.WriteString("\n")
	return sb.String()
}
