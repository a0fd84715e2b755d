package validator

import "golang.org/x/text/language"

var supported = []language.Tag{
	language.English,
	language.Vietnamese,
}

var matcher = language.NewMatcher(supported)

var catalogs = map[language.Tag]map[ErrorKind]string{
	language.English: {
		MalformedTime:         "time must be in HH:mm format",
		PastDate:              "cannot book a date in the past",
		PastTime:              "start time has already passed",
		EndBeforeStart:        "end time must be after start time",
		TooShort:              "minimum booking duration is 1 hour",
		OutsideOperatingHours: "booking is outside the court's operating hours",
	},
	language.Vietnamese: {
		MalformedTime:         "giờ phải có định dạng HH:mm",
		PastDate:              "không thể đặt sân cho ngày đã qua",
		PastTime:              "giờ bắt đầu đã qua",
		EndBeforeStart:        "giờ kết thúc phải sau giờ bắt đầu",
		TooShort:              "thời gian đặt sân tối thiểu là 1 giờ",
		OutsideOperatingHours: "thời gian đặt nằm ngoài giờ hoạt động của sân",
	},
}

// MatchLanguage picks the best supported language for an Accept-Language header value.
// Unparseable or empty input falls back to English.
func MatchLanguage(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return language.English
	}

	_, index, _ := matcher.Match(tags...)

	return supported[index]
}

// Message returns the user-facing text for kind in lang.
func Message(kind ErrorKind, lang language.Tag) string {
	catalog, ok := catalogs[lang]
	if !ok {
		catalog = catalogs[language.English]
	}

	if msg, ok := catalog[kind]; ok {
		return msg
	}

	return kind.String()
}
