package i18n

// Key identifies a message in the catalog.
type Key string

const (
	MsgCorrect         Key = "quiz.correct"
	MsgWrong           Key = "quiz.wrong"
	MsgRowComplete     Key = "quiz.row_complete"
	MsgAllComplete     Key = "quiz.all_complete"
	MsgPickReading     Key = "quiz.pick_reading"
	MsgRowProgress     Key = "quiz.row_progress"
	MsgCurrentRow      Key = "quiz.current_row"
	MsgSaveFailed      Key = "quiz.save_failed"
	MsgGuestMode       Key = "quiz.guest_mode"
	MsgMenuHiragana    Key = "menu.hiragana"
	MsgMenuKatakana    Key = "menu.katakana"
	MsgMenuSettings    Key = "menu.settings"
	MsgMenuProgress    Key = "menu.progress"
	MsgMenuExit        Key = "menu.exit"
	MsgSettingsTitle   Key = "settings.title"
	MsgRowSize         Key = "settings.row_size"
	MsgTheme           Key = "settings.theme"
	MsgLanguage        Key = "settings.language"
	MsgLearner         Key = "settings.learner"
	MsgResetHiragana   Key = "settings.reset_hiragana"
	MsgResetKatakana   Key = "settings.reset_katakana"
	MsgResetConfirm    Key = "settings.reset_confirm"
	MsgResetDone       Key = "settings.reset_done"
	MsgSettingsSaved   Key = "settings.saved"
	MsgProgressTitle   Key = "progress.title"
	MsgAccuracy        Key = "progress.accuracy"
	MsgTotalAnswers    Key = "progress.total_answers"
	MsgPracticeDays    Key = "progress.practice_days"
	MsgNoAnswersYet    Key = "progress.no_answers"
	MsgCompleted       Key = "progress.completed"
	MsgThemeDark       Key = "theme.dark"
	MsgThemeLight      Key = "theme.light"
	MsgHintQuiz        Key = "hint.quiz"
	MsgHintMenu        Key = "hint.menu"
	MsgHintBack        Key = "hint.back"
	MsgHintSettings    Key = "hint.settings"
	MsgGreetingLearner Key = "home.greeting_learner"
	MsgGreetingGuest   Key = "home.greeting_guest"
	MsgHomeTitle       Key = "home.title"
	MsgIsReading       Key = "quiz.is_reading"
	MsgNotQuiteRight   Key = "quiz.not_quite_right"
	MsgHintSwitch      Key = "hint.switch"
	MsgHintNext        Key = "hint.next"
	MsgHintEdit        Key = "hint.edit"
	MsgHintNavigate    Key = "hint.navigate"
	MsgSummaryTitle    Key = "summary.title"
	MsgSummaryTime     Key = "summary.time"
	MsgSummaryScore    Key = "summary.score"
	MsgSummaryRows     Key = "summary.rows"
	MsgSummaryNone     Key = "summary.none"
	MsgLastPractice    Key = "progress.last_practice"
	MsgGuestLabel      Key = "settings.guest"
	MsgTagline         Key = "welcome.tagline"
	MsgPressAnyKey     Key = "welcome.press_any_key"
)

var catalog = map[Lang]map[Key]string{
	English: {
		MsgCorrect:         "Correct! 正解!",
		MsgWrong:           "Try again もう一度!",
		MsgRowComplete:     "Row completed! Moving to the next row",
		MsgAllComplete:     "All rows complete! おめでとう!",
		MsgPickReading:     "Pick the reading",
		MsgRowProgress:     "%d / %d correct in this row",
		MsgCurrentRow:      "Row %s",
		MsgSaveFailed:      "Progress could not be saved",
		MsgGuestMode:       "Guest mode: progress is not saved",
		MsgMenuHiragana:    "Hiragana",
		MsgMenuKatakana:    "Katakana",
		MsgMenuSettings:    "Settings",
		MsgMenuProgress:    "Progress",
		MsgMenuExit:        "Exit",
		MsgSettingsTitle:   "Settings",
		MsgRowSize:         "Characters per row",
		MsgTheme:           "Theme",
		MsgLanguage:        "Language",
		MsgLearner:         "Learner",
		MsgResetHiragana:   "Reset Hiragana progress",
		MsgResetKatakana:   "Reset Katakana progress",
		MsgResetConfirm:    "Press enter again to confirm",
		MsgResetDone:       "Progress reset",
		MsgSettingsSaved:   "Settings saved",
		MsgProgressTitle:   "Progress",
		MsgAccuracy:        "Accuracy",
		MsgTotalAnswers:    "Answers",
		MsgPracticeDays:    "Practice days",
		MsgNoAnswersYet:    "No answers yet",
		MsgCompleted:       "complete",
		MsgThemeDark:       "Dark",
		MsgThemeLight:      "Light",
		MsgHintQuiz:        "answer",
		MsgHintMenu:        "select",
		MsgHintBack:        "back",
		MsgHintSettings:    "change",
		MsgGreetingLearner: "Welcome back, %s!",
		MsgGreetingGuest:   "Welcome! Playing as guest.",
		MsgHomeTitle:       "Home",
		MsgIsReading:       "%s is %q",
		MsgNotQuiteRight:   "Not quite right",
		MsgHintSwitch:      "switch kana",
		MsgHintNext:        "next",
		MsgHintEdit:        "edit",
		MsgHintNavigate:    "move",
		MsgSummaryTitle:    "Session complete!",
		MsgSummaryTime:     "Time",
		MsgSummaryScore:    "Score",
		MsgSummaryRows:     "Rows completed",
		MsgSummaryNone:     "none",
		MsgLastPractice:    "Last practice",
		MsgGuestLabel:      "(guest)",
		MsgTagline:         "One row at a time.",
		MsgPressAnyKey:     "press any key to continue",
	},
	French: {
		MsgCorrect:         "Correct ! 正解!",
		MsgWrong:           "Réessaie もう一度!",
		MsgRowComplete:     "Ligne terminée ! Passage à la ligne suivante",
		MsgAllComplete:     "Toutes les lignes sont terminées ! おめでとう!",
		MsgPickReading:     "Choisis la lecture",
		MsgRowProgress:     "%d / %d bonnes réponses dans cette ligne",
		MsgCurrentRow:      "Ligne %s",
		MsgSaveFailed:      "La progression n'a pas pu être enregistrée",
		MsgGuestMode:       "Mode invité : la progression n'est pas enregistrée",
		MsgMenuHiragana:    "Hiragana",
		MsgMenuKatakana:    "Katakana",
		MsgMenuSettings:    "Paramètres",
		MsgMenuProgress:    "Progression",
		MsgMenuExit:        "Quitter",
		MsgSettingsTitle:   "Paramètres",
		MsgRowSize:         "Caractères par ligne",
		MsgTheme:           "Thème",
		MsgLanguage:        "Langue",
		MsgLearner:         "Apprenant",
		MsgResetHiragana:   "Réinitialiser les Hiragana",
		MsgResetKatakana:   "Réinitialiser les Katakana",
		MsgResetConfirm:    "Appuie encore sur entrée pour confirmer",
		MsgResetDone:       "Progression réinitialisée",
		MsgSettingsSaved:   "Paramètres enregistrés",
		MsgProgressTitle:   "Progression",
		MsgAccuracy:        "Précision",
		MsgTotalAnswers:    "Réponses",
		MsgPracticeDays:    "Jours de pratique",
		MsgNoAnswersYet:    "Aucune réponse pour l'instant",
		MsgCompleted:       "terminé",
		MsgThemeDark:       "Sombre",
		MsgThemeLight:      "Clair",
		MsgHintQuiz:        "répondre",
		MsgHintMenu:        "choisir",
		MsgHintBack:        "retour",
		MsgHintSettings:    "modifier",
		MsgGreetingLearner: "Bon retour, %s !",
		MsgGreetingGuest:   "Bienvenue ! Tu joues en invité.",
		MsgHomeTitle:       "Accueil",
		MsgIsReading:       "%s se lit %q",
		MsgNotQuiteRight:   "Pas tout à fait",
		MsgHintSwitch:      "changer de kana",
		MsgHintNext:        "suivant",
		MsgHintEdit:        "modifier",
		MsgHintNavigate:    "déplacer",
		MsgSummaryTitle:    "Session terminée !",
		MsgSummaryTime:     "Durée",
		MsgSummaryScore:    "Score",
		MsgSummaryRows:     "Lignes terminées",
		MsgSummaryNone:     "aucune",
		MsgLastPractice:    "Dernière pratique",
		MsgGuestLabel:      "(invité)",
		MsgTagline:         "Une ligne à la fois.",
		MsgPressAnyKey:     "appuie sur une touche pour continuer",
	},
}
