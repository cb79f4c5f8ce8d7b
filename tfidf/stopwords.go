package tfidf

// stopwords is the Russian stop-word vocabulary excluded from the vector
// space. Function words dominate raw frequency counts and carry no signal
// for program-content questions.
var stopwords = func() map[string]struct{} {
	words := []string{
		"и", "в", "во", "не", "что", "он", "на", "я", "с", "со", "как", "а",
		"то", "все", "она", "так", "его", "но", "да", "ты", "к", "у", "же",
		"вы", "за", "бы", "по", "только", "ее", "мне", "было", "вот", "от",
		"меня", "еще", "нет", "о", "из", "ему", "теперь", "когда", "даже",
		"ну", "вдруг", "ли", "если", "уже", "или", "ни", "быть", "был",
		"него", "до", "вас", "нибудь", "опять", "уж", "вам", "ведь", "там",
		"потом", "себя",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()
