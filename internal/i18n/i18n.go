// Package i18n holds the per-language string table the response renderer
// draws from. Every phrase a template can emit lives here; templates never
// hardcode user-facing text.
package i18n

import "github.com/weatherchat/backend/internal/domain"

// Strings is the full set of localized phrases for one language.
type Strings struct {
	// Headers and titles
	CurrentWeatherIn            string
	TemperatureIn               string
	RainForecastFor             string
	WindConditionsIn            string
	HumidityIn                  string
	UVIndexFor                  string
	SunriseSunsetIn             string
	HourlyForecastFor           string
	WeekForecastFor             string
	TomorrowForecastFor         string
	DayAfterTomorrowForecastFor string
	ForecastFor                 string

	// Labels
	Temperature   string
	FeelsLike     string
	Humidity      string
	Wind          string
	CloudCover    string
	Pressure      string
	Precipitation string
	RainChance    string
	UVIndex       string
	Sunrise       string
	Sunset        string
	Daylight      string
	Current       string
	Today         string
	TodayRange    string
	UpcomingDays  string
	ThisWeek      string
	Next12Hours   string
	FromDirection string
	GustsUpTo     string
	Hours         string

	// Sentence fragments
	RightNowIts string
	With        string

	// Rain
	NoSignificantRain string
	RainLikely        string
	PeakProbability   string
	Around            string
	NoPrecipitation   string
	ChanceOf          string
	Expected          string
	UmbrellaAdvice    string

	// Wind advice
	StrongGusts   string
	ModerateWinds string
	LightWinds    string
	Speed         string
	Gusts         string
	MaxWinds      string

	// Humidity comfort
	VeryDry             string
	ComfortableHumidity string
	ModerateHumidity    string
	HighHumidity        string

	// UV advice
	ExtremeUV  string
	VeryHighUV string
	HighUV     string
	ModerateUV string
	LowUV      string

	// Errors
	LocationNotFound string
	NoLocation       string
	APIError         string
	PastDateError    string
	FutureDateError  string
	NoForecastData   string

	// Session messages
	WelcomeMessage string
	ChatCleared    string
}

// Get returns the string table for a language. Unknown languages fall back to
// English so a renderer never sees an empty table.
func Get(lang domain.Language) *Strings {
	if s, ok := tables[lang]; ok {
		return s
	}
	return tables[domain.LanguageEN]
}

var tables = map[domain.Language]*Strings{
	domain.LanguageEN: {
		CurrentWeatherIn:            "Current weather in",
		TemperatureIn:               "Temperature in",
		RainForecastFor:             "Rain forecast for",
		WindConditionsIn:            "Wind conditions in",
		HumidityIn:                  "Humidity in",
		UVIndexFor:                  "UV Index for",
		SunriseSunsetIn:             "Sunrise & Sunset in",
		HourlyForecastFor:           "Hourly forecast for",
		WeekForecastFor:             "7-Day Forecast for",
		TomorrowForecastFor:         "Tomorrow's forecast for",
		DayAfterTomorrowForecastFor: "Day after tomorrow's forecast for",
		ForecastFor:                 "forecast for",

		Temperature:   "Temperature",
		FeelsLike:     "Feels like",
		Humidity:      "Humidity",
		Wind:          "Wind",
		CloudCover:    "Cloud cover",
		Pressure:      "Pressure",
		Precipitation: "Precipitation",
		RainChance:    "Rain chance",
		UVIndex:       "UV Index",
		Sunrise:       "Sunrise",
		Sunset:        "Sunset",
		Daylight:      "Daylight",
		Current:       "Current",
		Today:         "Today",
		TodayRange:    "Today's range",
		UpcomingDays:  "Upcoming days",
		ThisWeek:      "This week",
		Next12Hours:   "Next 12 hours",
		FromDirection: "from",
		GustsUpTo:     "gusts up to",
		Hours:         "hours",

		RightNowIts: "Right now it's",
		With:        "with a temperature of",

		NoSignificantRain: "No significant rain expected in the next 12 hours.",
		RainLikely:        "Rain likely!",
		PeakProbability:   "Peak probability of",
		Around:            "around",
		NoPrecipitation:   "No precipitation",
		ChanceOf:          "chance",
		Expected:          "expected",
		UmbrellaAdvice:    "Tip: You might want to bring an umbrella!",

		StrongGusts:   "Strong gusts today - secure loose items outdoors!",
		ModerateWinds: "Moderate winds - might affect outdoor activities.",
		LightWinds:    "Light winds - good conditions for outdoor activities.",
		Speed:         "Speed",
		Gusts:         "Gusts",
		MaxWinds:      "max winds",

		VeryDry:             "Very dry - consider using moisturizer.",
		ComfortableHumidity: "Comfortable humidity levels.",
		ModerateHumidity:    "Moderate humidity - slightly muggy.",
		HighHumidity:        "High humidity - may feel uncomfortable.",

		ExtremeUV:  "Extreme UV! Avoid sun exposure, stay indoors during midday.",
		VeryHighUV: "Very high UV! Wear SPF 50+, hat, and sunglasses. Limit sun exposure.",
		HighUV:     "High UV. Wear SPF 30+, seek shade during midday hours.",
		ModerateUV: "Moderate UV. Wear sunscreen if outside for extended periods.",
		LowUV:      "Low UV. Minimal sun protection needed.",

		LocationNotFound: "I couldn't find that location. Could you please check the spelling or try a different city name? You can also try adding the country (e.g., 'Paris, France').",
		NoLocation:       "I'd love to help with the weather! Please tell me which city you'd like to know about. For example, try asking 'What's the weather in London?' or 'Will it rain in Tokyo?'",
		APIError:         "I'm having trouble fetching weather data right now. Please try again in a moment.",
		PastDateError:    "Sorry, I can't show weather for past dates. Please ask about today or future dates.",
		FutureDateError:  "Sorry, I can only show forecasts up to 7 days ahead. The date is too far in the future.",
		NoForecastData:   "Sorry, I don't have forecast data for that day. I can only show forecasts up to 7 days ahead.",

		WelcomeMessage: "Hi! I'm your weather assistant. Ask me anything about the weather in any city around the world!\n\nTry questions like:\n• \"What's the weather in Tokyo?\"\n• \"Will it rain in London tomorrow?\"\n• \"Show me the forecast for New York this week\"\n• \"What's the UV index in Sydney?\"",
		ChatCleared:    "Chat cleared! How can I help you with the weather today?",
	},

	domain.LanguageLV: {
		CurrentWeatherIn:            "Pašreizējie laika apstākļi",
		TemperatureIn:               "Temperatūra",
		RainForecastFor:             "Lietus prognoze",
		WindConditionsIn:            "Vēja apstākļi",
		HumidityIn:                  "Mitrums",
		UVIndexFor:                  "UV indekss",
		SunriseSunsetIn:             "Saullēkts un saulriets",
		HourlyForecastFor:           "Stundu prognoze",
		WeekForecastFor:             "7 dienu prognoze",
		TomorrowForecastFor:         "Rītdienas prognoze",
		DayAfterTomorrowForecastFor: "Parīt prognoze",
		ForecastFor:                 "prognoze",

		Temperature:   "Temperatūra",
		FeelsLike:     "Jūtas kā",
		Humidity:      "Mitrums",
		Wind:          "Vējš",
		CloudCover:    "Mākoņainība",
		Pressure:      "Spiediens",
		Precipitation: "Nokrišņi",
		RainChance:    "Lietus iespējamība",
		UVIndex:       "UV indekss",
		Sunrise:       "Saullēkts",
		Sunset:        "Saulriets",
		Daylight:      "Dienas gaisma",
		Current:       "Pašlaik",
		Today:         "Šodien",
		TodayRange:    "Šodienas diapazons",
		UpcomingDays:  "Nākamās dienas",
		ThisWeek:      "Šonedēļ",
		Next12Hours:   "Nākamās 12 stundas",
		FromDirection: "no",
		GustsUpTo:     "brāzmas līdz",
		Hours:         "stundas",

		RightNowIts: "Pašlaik ir",
		With:        "ar temperatūru",

		NoSignificantRain: "Nākamajās 12 stundās būtiski nokrišņi nav gaidāmi.",
		RainLikely:        "Iespējams lietus!",
		PeakProbability:   "Maksimālā varbūtība",
		Around:            "ap",
		NoPrecipitation:   "Nav nokrišņu",
		ChanceOf:          "iespējamība",
		Expected:          "gaidāms",
		UmbrellaAdvice:    "Padoms: Ieteicams paņemt līdzi lietussargu!",

		StrongGusts:   "Stipras vēja brāzmas - nostipriniet brīvus priekšmetus ārā!",
		ModerateWinds: "Mērens vējš - var ietekmēt āra aktivitātes.",
		LightWinds:    "Vājš vējš - labi apstākļi āra aktivitātēm.",
		Speed:         "Ātrums",
		Gusts:         "Brāzmas",
		MaxWinds:      "maks. vējš",

		VeryDry:             "Ļoti sauss - ieteicams lietot mitrinātāju.",
		ComfortableHumidity: "Komfortabls mitruma līmenis.",
		ModerateHumidity:    "Mērens mitrums - nedaudz smacīgs.",
		HighHumidity:        "Augsts mitrums - var justies neērti.",

		ExtremeUV:  "Ekstrēms UV! Izvairieties no saules, palieciet iekštelpās pusdienlaikā.",
		VeryHighUV: "Ļoti augsts UV! Lietojiet SPF 50+, cepuri un saulesbrilles. Ierobežojiet uzturēšanos saulē.",
		HighUV:     "Augsts UV. Lietojiet SPF 30+, meklējiet ēnu pusdienlaikā.",
		ModerateUV: "Mērens UV. Lietojiet saules aizsargkrēmu, ja esat ārā ilgstoši.",
		LowUV:      "Zems UV. Minimāla saules aizsardzība nepieciešama.",

		LocationNotFound: "Nevarēju atrast šo vietu. Lūdzu, pārbaudiet pareizrakstību vai mēģiniet citu pilsētas nosaukumu. Varat arī pievienot valsti (piem., \"Parīze, Francija\").",
		NoLocation:       "Labprāt palīdzēšu ar laika prognozi! Lūdzu, norādiet pilsētu. Piemēram, jautājiet \"Kāds laiks Rīgā?\" vai \"Vai rīt līs Liepājā?\"",
		APIError:         "Pašlaik ir problēmas ar laika datu iegūšanu. Lūdzu, mēģiniet vēlreiz pēc brīža.",
		PastDateError:    "Atvainojiet, nevaru parādīt laiku pagātnes datumiem. Lūdzu, jautājiet par šodienu vai nākotnes datumiem.",
		FutureDateError:  "Atvainojiet, varu parādīt prognozi tikai līdz 7 dienām uz priekšu. Datums ir pārāk tālu nākotnē.",
		NoForecastData:   "Atvainojiet, man nav prognozes datu šai dienai. Varu parādīt prognozi tikai līdz 7 dienām uz priekšu.",

		WelcomeMessage: "Sveiki! Es esmu jūsu laika asistents. Jautājiet man par laiku jebkurā pilsētā pasaulē!\n\nMēģiniet jautāt:\n• \"Kāds laiks Rīgā?\"\n• \"Vai rīt līs Liepājā?\"\n• \"Parādi nedēļas prognozi Jelgavai\"\n• \"Kāds UV indekss Jūrmalā?\"",
		ChatCleared:    "Čats notīrīts! Kā varu palīdzēt ar laika prognozi šodien?",
	},

	domain.LanguageRU: {
		CurrentWeatherIn:            "Текущая погода в",
		TemperatureIn:               "Температура в",
		RainForecastFor:             "Прогноз осадков для",
		WindConditionsIn:            "Ветер в",
		HumidityIn:                  "Влажность в",
		UVIndexFor:                  "УФ-индекс для",
		SunriseSunsetIn:             "Восход и закат в",
		HourlyForecastFor:           "Почасовой прогноз для",
		WeekForecastFor:             "Прогноз на 7 дней для",
		TomorrowForecastFor:         "Прогноз на завтра для",
		DayAfterTomorrowForecastFor: "Прогноз на послезавтра для",
		ForecastFor:                 "прогноз для",

		Temperature:   "Температура",
		FeelsLike:     "Ощущается как",
		Humidity:      "Влажность",
		Wind:          "Ветер",
		CloudCover:    "Облачность",
		Pressure:      "Давление",
		Precipitation: "Осадки",
		RainChance:    "Вероятность дождя",
		UVIndex:       "УФ-индекс",
		Sunrise:       "Восход",
		Sunset:        "Закат",
		Daylight:      "Световой день",
		Current:       "Сейчас",
		Today:         "Сегодня",
		TodayRange:    "Диапазон на сегодня",
		UpcomingDays:  "Ближайшие дни",
		ThisWeek:      "На этой неделе",
		Next12Hours:   "Следующие 12 часов",
		FromDirection: "с",
		GustsUpTo:     "порывы до",
		Hours:         "часов",

		RightNowIts: "Сейчас",
		With:        "температура",

		NoSignificantRain: "В ближайшие 12 часов значительных осадков не ожидается.",
		RainLikely:        "Вероятен дождь!",
		PeakProbability:   "Максимальная вероятность",
		Around:            "около",
		NoPrecipitation:   "Без осадков",
		ChanceOf:          "вероятность",
		Expected:          "ожидается",
		UmbrellaAdvice:    "Совет: Возьмите с собой зонт!",

		StrongGusts:   "Сильные порывы ветра - закрепите незакреплённые предметы!",
		ModerateWinds: "Умеренный ветер - может повлиять на активности на улице.",
		LightWinds:    "Слабый ветер - хорошие условия для прогулок.",
		Speed:         "Скорость",
		Gusts:         "Порывы",
		MaxWinds:      "макс. ветер",

		VeryDry:             "Очень сухо - рекомендуется увлажняющий крем.",
		ComfortableHumidity: "Комфортный уровень влажности.",
		ModerateHumidity:    "Умеренная влажность - немного душно.",
		HighHumidity:        "Высокая влажность - может быть некомфортно.",

		ExtremeUV:  "Экстремальный УФ! Избегайте солнца, оставайтесь в помещении в полдень.",
		VeryHighUV: "Очень высокий УФ! Используйте SPF 50+, шляпу и очки. Ограничьте пребывание на солнце.",
		HighUV:     "Высокий УФ. Используйте SPF 30+, ищите тень в полуденные часы.",
		ModerateUV: "Умеренный УФ. Используйте солнцезащитный крем при длительном пребывании на улице.",
		LowUV:      "Низкий УФ. Минимальная защита от солнца.",

		LocationNotFound: "Не удалось найти это место. Проверьте правильность написания или попробуйте другое название города. Можно также добавить страну (например, \"Париж, Франция\").",
		NoLocation:       "С удовольствием помогу с погодой! Укажите город. Например, спросите \"Какая погода в Москве?\" или \"Будет ли дождь в Киеве?\"",
		APIError:         "Сейчас возникли проблемы с получением данных о погоде. Попробуйте позже.",
		PastDateError:    "Извините, не могу показать погоду за прошедшие даты. Спрашивайте о сегодня или будущих датах.",
		FutureDateError:  "Извините, прогноз доступен только на 7 дней вперёд. Дата слишком далеко в будущем.",
		NoForecastData:   "Извините, нет данных прогноза на этот день. Прогноз доступен только на 7 дней вперёд.",

		WelcomeMessage: "Привет! Я ваш погодный помощник. Спрашивайте о погоде в любом городе мира!\n\nПопробуйте спросить:\n• \"Какая погода в Москве?\"\n• \"Будет ли дождь в Киеве завтра?\"\n• \"Покажи прогноз на неделю для Риги\"\n• \"Какой УФ-индекс в Одессе?\"",
		ChatCleared:    "Чат очищен! Чем могу помочь с погодой сегодня?",
	},

	domain.LanguageUK: {
		CurrentWeatherIn:            "Поточна погода в",
		TemperatureIn:               "Температура в",
		RainForecastFor:             "Прогноз опадів для",
		WindConditionsIn:            "Вітер у",
		HumidityIn:                  "Вологість у",
		UVIndexFor:                  "УФ-індекс для",
		SunriseSunsetIn:             "Схід і захід сонця в",
		HourlyForecastFor:           "Погодинний прогноз для",
		WeekForecastFor:             "Прогноз на 7 днів для",
		TomorrowForecastFor:         "Прогноз на завтра для",
		DayAfterTomorrowForecastFor: "Прогноз на післязавтра для",
		ForecastFor:                 "прогноз для",

		Temperature:   "Температура",
		FeelsLike:     "Відчувається як",
		Humidity:      "Вологість",
		Wind:          "Вітер",
		CloudCover:    "Хмарність",
		Pressure:      "Тиск",
		Precipitation: "Опади",
		RainChance:    "Ймовірність дощу",
		UVIndex:       "УФ-індекс",
		Sunrise:       "Схід сонця",
		Sunset:        "Захід сонця",
		Daylight:      "Світловий день",
		Current:       "Зараз",
		Today:         "Сьогодні",
		TodayRange:    "Діапазон на сьогодні",
		UpcomingDays:  "Найближчі дні",
		ThisWeek:      "Цього тижня",
		Next12Hours:   "Наступні 12 годин",
		FromDirection: "з",
		GustsUpTo:     "пориви до",
		Hours:         "годин",

		RightNowIts: "Зараз",
		With:        "температура",

		NoSignificantRain: "У найближчі 12 годин значних опадів не очікується.",
		RainLikely:        "Ймовірний дощ!",
		PeakProbability:   "Максимальна ймовірність",
		Around:            "близько",
		NoPrecipitation:   "Без опадів",
		ChanceOf:          "ймовірність",
		Expected:          "очікується",
		UmbrellaAdvice:    "Порада: Візьміть із собою парасольку!",

		StrongGusts:   "Сильні пориви вітру - закріпіть незакріплені предмети!",
		ModerateWinds: "Помірний вітер - може вплинути на активності на вулиці.",
		LightWinds:    "Слабкий вітер - гарні умови для прогулянок.",
		Speed:         "Швидкість",
		Gusts:         "Пориви",
		MaxWinds:      "макс. вітер",

		VeryDry:             "Дуже сухо - рекомендується зволожувальний крем.",
		ComfortableHumidity: "Комфортний рівень вологості.",
		ModerateHumidity:    "Помірна вологість - трохи душно.",
		HighHumidity:        "Висока вологість - може бути некомфортно.",

		ExtremeUV:  "Екстремальний УФ! Уникайте сонця, залишайтеся в приміщенні опівдні.",
		VeryHighUV: "Дуже високий УФ! Використовуйте SPF 50+, капелюх і окуляри. Обмежте перебування на сонці.",
		HighUV:     "Високий УФ. Використовуйте SPF 30+, шукайте тінь в обідні години.",
		ModerateUV: "Помірний УФ. Використовуйте сонцезахисний крем при тривалому перебуванні на вулиці.",
		LowUV:      "Низький УФ. Мінімальний захист від сонця.",

		LocationNotFound: "Не вдалося знайти це місце. Перевірте правильність написання або спробуйте іншу назву міста. Можна також додати країну (наприклад, \"Париж, Франція\").",
		NoLocation:       "Із задоволенням допоможу з погодою! Вкажіть місто. Наприклад, запитайте \"Яка погода в Києві?\" або \"Чи буде дощ у Львові?\"",
		APIError:         "Зараз виникли проблеми з отриманням даних про погоду. Спробуйте пізніше.",
		PastDateError:    "Вибачте, не можу показати погоду за минулі дати. Запитуйте про сьогодні або майбутні дати.",
		FutureDateError:  "Вибачте, прогноз доступний лише на 7 днів уперед. Дата занадто далеко в майбутньому.",
		NoForecastData:   "Вибачте, немає даних прогнозу на цей день. Прогноз доступний лише на 7 днів уперед.",

		WelcomeMessage: "Привіт! Я ваш погодний помічник. Запитуйте про погоду в будь-якому місті світу!\n\nСпробуйте запитати:\n• \"Яка погода в Києві?\"\n• \"Чи буде дощ у Львові завтра?\"\n• \"Покажи прогноз на тиждень для Одеси\"\n• \"Який УФ-індекс у Харкові?\"",
		ChatCleared:    "Чат очищено! Чим можу допомогти з погодою сьогодні?",
	},
}
