package render

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/charmbracelet/lipgloss"
)

var (
	deviceTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	okStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	alertStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// BackupStatus summarizes one backup destination of a device
type BackupStatus struct {
	Destination     string
	ArchiveBytes    int64
	PercentComplete float64
	LastBackup      string
	LastCompleted   string
}

// DeviceHealth is the enriched per-device view printed by devices-health
type DeviceHealth struct {
	Name          string
	GUID          string
	OS            string
	Version       string
	Status        string
	LastConnected string
	AlertStates   []string
	Backups       []BackupStatus
}

const deviceReportTemplate = `{{ .Title }} {{ .Badge }}
  OS:             {{ .Health.OS | default "unknown" }}
  Agent version:  {{ .Health.Version | default "unknown" }}
  Status:         {{ .Health.Status | default "unknown" }}
  Last connected: {{ .Health.LastConnected | default "never" }}
{{- if .Health.AlertStates }}
  Alerts:         {{ .Health.AlertStates | join ", " }}
{{- end }}
{{- range .Health.Backups }}
  Backup -> {{ .Destination }}: {{ printf "%.1f%%" .PercentComplete }} complete, {{ .ArchiveBytes }} bytes archived, last completed {{ .LastCompleted | default "never" }}
{{- end }}
`

var deviceReport = template.Must(
	template.New("device-report").Funcs(sprig.FuncMap()).Parse(deviceReportTemplate),
)

// DeviceReport writes the health report of one device
func DeviceReport(w io.Writer, health DeviceHealth) error {
	badge := okStyle.Render("[ok]")
	if len(health.AlertStates) > 0 {
		badge = alertStyle.Render("[" + strings.ToLower(strings.Join(health.AlertStates, ",")) + "]")
	}

	data := struct {
		Title  string
		Badge  string
		Health DeviceHealth
	}{
		Title:  deviceTitleStyle.Render(fmt.Sprintf("%s (%s)", health.Name, health.GUID)),
		Badge:  badge,
		Health: health,
	}

	return deviceReport.Execute(w, data)
}
