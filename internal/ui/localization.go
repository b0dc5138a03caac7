package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyTabURL            = "tab_url"
	KeyTabOptions        = "tab_options"
	KeyTabProgress       = "tab_progress"
	KeyEnterURL          = "enter_url"
	KeyFetch             = "fetch"
	KeyFetching          = "fetching"
	KeyHandleAsPlaylist  = "handle_as_playlist"
	KeyPaste             = "paste"
	KeyExtractAudio      = "extract_audio"
	KeyAudioFormat       = "audio_format"
	KeyAudioQuality      = "audio_quality"
	KeyPlaylistNotice    = "playlist_notice"
	KeySelectBest        = "select_best"
	KeySearchFormats     = "search_formats"
	KeyVideoOnly         = "video_only"
	KeyAudioOnly         = "audio_only"
	KeyEmbedMetadata     = "embed_metadata"
	KeyEmbedThumbnail    = "embed_thumbnail"
	KeySubtitles         = "subtitles"
	KeyAddLanguage       = "add_language"
	KeyWriteDescription  = "write_description"
	KeyWriteComments     = "write_comments"
	KeyWriteInfoJSON     = "write_info_json"
	KeySponsorblock      = "sponsorblock"
	KeyChapters          = "chapters"
	KeyUseCookies        = "use_cookies"
	KeyRefreshCookies    = "refresh_cookies"
	KeyCookieHint        = "cookie_hint"
	KeyStartDownload     = "start_download"
	KeyDownloadAnother   = "download_another"
	KeyRetry             = "retry"
	KeySettings          = "settings"
	KeyAPIBaseURL        = "api_base_url"
	KeyTheme             = "theme"
	KeyLanguage          = "language"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyInvalidURL        = "invalid_url"
	KeyPleaseEnterURL    = "please_enter_url"
	KeyDownloadCompleted = "download_completed"
	KeyDownloadFailed    = "download_failed"
	KeyAuthErrorHint     = "auth_error_hint"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "yt-dlp UI",
		KeyTabURL:            "URL",
		KeyTabOptions:        "Options",
		KeyTabProgress:       "Progress",
		KeyEnterURL:          "Enter video URL (https://youtube.com/watch?v=...)",
		KeyFetch:             "Fetch",
		KeyFetching:          "Fetching video information...",
		KeyHandleAsPlaylist:  "Handle as playlist",
		KeyPaste:             "Paste",
		KeyExtractAudio:      "Extract audio only",
		KeyAudioFormat:       "Audio format",
		KeyAudioQuality:      "Audio quality (0 = best)",
		KeyPlaylistNotice:    "Playlist format selection not available - downloading all entries",
		KeySelectBest:        "Select Best Quality",
		KeySearchFormats:     "Search formats...",
		KeyVideoOnly:         "Video only",
		KeyAudioOnly:         "Audio only",
		KeyEmbedMetadata:     "Embed metadata",
		KeyEmbedThumbnail:    "Embed thumbnail",
		KeySubtitles:         "Download subtitles",
		KeyAddLanguage:       "Add",
		KeyWriteDescription:  "Save description",
		KeyWriteComments:     "Save comments",
		KeyWriteInfoJSON:     "Save info JSON",
		KeySponsorblock:      "Remove sponsor segments",
		KeyChapters:          "Chapters from comments",
		KeyUseCookies:        "Use browser cookies",
		KeyRefreshCookies:    "Refresh cookies",
		KeyCookieHint:        "Paste your cookie header or a cookies.txt export to authenticate",
		KeyStartDownload:     "Start Download",
		KeyDownloadAnother:   "Download Another",
		KeyRetry:             "Retry",
		KeySettings:          "Settings",
		KeyAPIBaseURL:        "Backend URL",
		KeyTheme:             "Theme",
		KeyLanguage:          "Language",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyInvalidURL:        "Invalid URL",
		KeyPleaseEnterURL:    "Please enter a URL",
		KeyDownloadCompleted: "Download completed",
		KeyDownloadFailed:    "Download failed",
		KeyAuthErrorHint:     "This looks like an authentication error. Enable browser cookies in Options and retry.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "yt-dlp UI",
		KeyTabURL:            "URL",
		KeyTabOptions:        "Параметры",
		KeyTabProgress:       "Прогресс",
		KeyEnterURL:          "Введите URL видео (https://youtube.com/watch?v=...)",
		KeyFetch:             "Получить",
		KeyFetching:          "Получение информации о видео...",
		KeyHandleAsPlaylist:  "Обрабатывать как плейлист",
		KeyPaste:             "Вставить",
		KeyExtractAudio:      "Извлечь только аудио",
		KeyAudioFormat:       "Формат аудио",
		KeyAudioQuality:      "Качество аудио (0 = лучшее)",
		KeyPlaylistNotice:    "Выбор формата недоступен для плейлистов - загружаются все элементы",
		KeySelectBest:        "Выбрать лучшее качество",
		KeySearchFormats:     "Поиск форматов...",
		KeyVideoOnly:         "Только видео",
		KeyAudioOnly:         "Только аудио",
		KeyEmbedMetadata:     "Встроить метаданные",
		KeyEmbedThumbnail:    "Встроить обложку",
		KeySubtitles:         "Скачать субтитры",
		KeyAddLanguage:       "Добавить",
		KeyWriteDescription:  "Сохранить описание",
		KeyWriteComments:     "Сохранить комментарии",
		KeyWriteInfoJSON:     "Сохранить info JSON",
		KeySponsorblock:      "Удалить рекламные сегменты",
		KeyChapters:          "Главы из комментариев",
		KeyUseCookies:        "Использовать cookies браузера",
		KeyRefreshCookies:    "Обновить cookies",
		KeyCookieHint:        "Вставьте заголовок cookie или экспорт cookies.txt для аутентификации",
		KeyStartDownload:     "Начать загрузку",
		KeyDownloadAnother:   "Загрузить ещё",
		KeyRetry:             "Повторить",
		KeySettings:          "Настройки",
		KeyAPIBaseURL:        "URL сервера",
		KeyTheme:             "Тема",
		KeyLanguage:          "Язык",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyInvalidURL:        "Неверный URL",
		KeyPleaseEnterURL:    "Пожалуйста, введите URL",
		KeyDownloadCompleted: "Загрузка завершена",
		KeyDownloadFailed:    "Ошибка загрузки",
		KeyAuthErrorHint:     "Похоже на ошибку аутентификации. Включите cookies браузера в параметрах и повторите.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "yt-dlp UI",
		KeyTabURL:            "URL",
		KeyTabOptions:        "Opções",
		KeyTabProgress:       "Progresso",
		KeyEnterURL:          "Digite a URL do vídeo (https://youtube.com/watch?v=...)",
		KeyFetch:             "Buscar",
		KeyFetching:          "Buscando informações do vídeo...",
		KeyHandleAsPlaylist:  "Tratar como playlist",
		KeyPaste:             "Colar",
		KeyExtractAudio:      "Extrair apenas áudio",
		KeyAudioFormat:       "Formato de áudio",
		KeyAudioQuality:      "Qualidade de áudio (0 = melhor)",
		KeyPlaylistNotice:    "Seleção de formato indisponível para playlists - baixando todos os itens",
		KeySelectBest:        "Selecionar melhor qualidade",
		KeySearchFormats:     "Pesquisar formatos...",
		KeyVideoOnly:         "Apenas vídeo",
		KeyAudioOnly:         "Apenas áudio",
		KeyEmbedMetadata:     "Incorporar metadados",
		KeyEmbedThumbnail:    "Incorporar miniatura",
		KeySubtitles:         "Baixar legendas",
		KeyAddLanguage:       "Adicionar",
		KeyWriteDescription:  "Salvar descrição",
		KeyWriteComments:     "Salvar comentários",
		KeyWriteInfoJSON:     "Salvar info JSON",
		KeySponsorblock:      "Remover segmentos patrocinados",
		KeyChapters:          "Capítulos dos comentários",
		KeyUseCookies:        "Usar cookies do navegador",
		KeyRefreshCookies:    "Atualizar cookies",
		KeyCookieHint:        "Cole o cabeçalho de cookies ou um cookies.txt para autenticar",
		KeyStartDownload:     "Iniciar download",
		KeyDownloadAnother:   "Baixar outro",
		KeyRetry:             "Tentar novamente",
		KeySettings:          "Configurações",
		KeyAPIBaseURL:        "URL do servidor",
		KeyTheme:             "Tema",
		KeyLanguage:          "Idioma",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyInvalidURL:        "URL inválida",
		KeyPleaseEnterURL:    "Por favor, digite uma URL",
		KeyDownloadCompleted: "Download concluído",
		KeyDownloadFailed:    "Falha no download",
		KeyAuthErrorHint:     "Parece um erro de autenticação. Ative os cookies do navegador nas opções e tente novamente.",
	}
}
