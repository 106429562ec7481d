package i18n

// The catalog keys are inherited from the original UI and shared between
// both languages; a key present in one catalog must be present in the other.
var catalogs = map[Language]map[string]string{
	Spanish: {
		"appTitle":        "Registro de Actividad",
		"pageMenu":        "Menú",
		"pageEntry":       "Registro Diario",
		"pageCalendar":    "Calendario",
		"pagePeople":      "Personas",
		"pageTexts":       "Textos Favoritos",
		"pageNotes":       "Notas",
		"pageCharts":      "Gráficas",
		"menuHours":       "Horas",
		"menuRevisits":    "Revisitas",
		"menuStudies":     "Estudios",
		"menuViewSummary": "Ver Resumen",

		"formHours":    "Horas",
		"formMinutes":  "Minutos",
		"formRevisits": "Revisitas",
		"formStudies":  "Estudios",
		"formSave":     "Guardar Día",
		"goalLabel":    "Meta mensual",
		"goalNone":     "Sin meta",

		"summaryTotalHours":    "Horas Totales:",
		"summaryTotalRevisits": "Revisitas Totales:",
		"summaryTotalStudies":  "Estudios Totales:",
		"reportTitle":          "Informe de {month}",
		"sendReport":           "Enviar Informe",
		"shareNotSupported":    "Compartir no está disponible en este dispositivo.",
		"reportCopied":         "Informe copiado al portapapeles.",

		"toastDaySaved":  "Día guardado.",
		"noteSavedToast": "Nota guardada.",

		"alertConfirm":          "Confirmar",
		"alertAttention":        "Atención",
		"alertConfirmDeleteAll": "¿Seguro que quieres borrar todos los registros y personas? Esta acción no se puede deshacer.",
		"alertTextRefRequired":  "La referencia del texto es obligatoria.",

		"peopleListEmpty":     "No hay personas guardadas todavía.",
		"notesEmpty":          "No hay notas todavía.",
		"favTextsEmpty":       "No hay textos favoritos todavía.",
		"entriesEmpty":        "No hay registros este mes.",
		"noNotes":             "Sin notas.",
		"noDescription":       "Sin descripción.",
		"confirmDeletePerson": "¿Eliminar a {name}?",
		"confirmDeleteNote":   "¿Eliminar esta nota?",
		"confirmDeleteText":   "¿Eliminar el texto {ref}?",

		"addPerson":         "Agregar Persona",
		"editPerson":        "Editar Persona",
		"personName":        "Nombre",
		"personNotes":       "Notas",
		"saveChanges":       "Guardar Cambios",
		"modalAddTextTitle": "Agregar Texto",
		"editText":          "Editar Texto",
		"textReference":     "Referencia",
		"textDescription":   "Descripción",

		"detailsFor":    "Detalles del {date}",
		"totalTime":     "Tiempo total:",
		"totalRevisits": "Revisitas:",
		"totalStudies":  "Estudios:",

		"chartsMonthlyDistribution": "Distribución del mes",
		"chartsHoursTrend":          "Horas por mes",

		"reminderTitle": "Registro de Actividad",
		"reminderBody":  "¡Es el primer día del mes! No olvides enviar tu informe.",

		"clearData":   "Borrar datos",
		"calWeekdays": "Do Lu Ma Mi Ju Vi Sa",
	},
	English: {
		"appTitle":        "Activity Log",
		"pageMenu":        "Menu",
		"pageEntry":       "Daily Entry",
		"pageCalendar":    "Calendar",
		"pagePeople":      "People",
		"pageTexts":       "Favorite Texts",
		"pageNotes":       "Notes",
		"pageCharts":      "Charts",
		"menuHours":       "Hours",
		"menuRevisits":    "Revisits",
		"menuStudies":     "Studies",
		"menuViewSummary": "View Summary",

		"formHours":    "Hours",
		"formMinutes":  "Minutes",
		"formRevisits": "Revisits",
		"formStudies":  "Studies",
		"formSave":     "Save Day",
		"goalLabel":    "Monthly goal",
		"goalNone":     "No goal",

		"summaryTotalHours":    "Total Hours:",
		"summaryTotalRevisits": "Total Revisits:",
		"summaryTotalStudies":  "Total Studies:",
		"reportTitle":          "Report for {month}",
		"sendReport":           "Send Report",
		"shareNotSupported":    "Sharing is not available on this device.",
		"reportCopied":         "Report copied to clipboard.",

		"toastDaySaved":  "Day saved.",
		"noteSavedToast": "Note saved.",

		"alertConfirm":          "Confirm",
		"alertAttention":        "Attention",
		"alertConfirmDeleteAll": "Delete all entries and people? This cannot be undone.",
		"alertTextRefRequired":  "The text reference is required.",

		"peopleListEmpty":     "No people saved yet.",
		"notesEmpty":          "No notes yet.",
		"favTextsEmpty":       "No favorite texts yet.",
		"entriesEmpty":        "No entries this month.",
		"noNotes":             "No notes.",
		"noDescription":       "No description.",
		"confirmDeletePerson": "Delete {name}?",
		"confirmDeleteNote":   "Delete this note?",
		"confirmDeleteText":   "Delete text {ref}?",

		"addPerson":         "Add Person",
		"editPerson":        "Edit Person",
		"personName":        "Name",
		"personNotes":       "Notes",
		"saveChanges":       "Save Changes",
		"modalAddTextTitle": "Add Text",
		"editText":          "Edit Text",
		"textReference":     "Reference",
		"textDescription":   "Description",

		"detailsFor":    "Details for {date}",
		"totalTime":     "Total time:",
		"totalRevisits": "Revisits:",
		"totalStudies":  "Studies:",

		"chartsMonthlyDistribution": "This month's distribution",
		"chartsHoursTrend":          "Hours per month",

		"reminderTitle": "Activity Log",
		"reminderBody":  "It's the first day of the month! Don't forget to send your report.",

		"clearData":   "Clear data",
		"calWeekdays": "Su Mo Tu We Th Fr Sa",
	},
}
