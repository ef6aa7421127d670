package nlp

// getStopWords returns common English stop words
func getStopWords() map[string]bool {
	words := []string{
		"a", "about", "above", "after", "again", "against", "all", "am", "an", "and", "any", "are", "aren't",
		"as", "at", "be", "because", "been", "before", "being", "below", "between", "both", "but", "by",
		"can't", "cannot", "could", "couldn't", "did", "didn't", "do", "does", "doesn't", "doing", "don't",
		"down", "during", "each", "few", "for", "from", "further", "had", "hadn't", "has", "hasn't", "have",
		"haven't", "having", "he", "he'd", "he'll", "he's", "her", "here", "here's", "hers", "herself", "him",
		"himself", "his", "how", "how's", "i", "i'd", "i'll", "i'm", "i've", "if", "in", "into", "is", "isn't",
		"it", "it's", "its", "itself", "let's", "me", "more", "most", "mustn't", "my", "myself", "no", "nor",
		"not", "of", "off", "on", "once", "only", "or", "other", "ought", "our", "ours", "ourselves", "out",
		"over", "own", "same", "shan't", "she", "she'd", "she'll", "she's", "should", "shouldn't", "so", "some",
		"such", "than", "that", "that's", "the", "their", "theirs", "them", "themselves", "then", "there",
		"there's", "these", "they", "they'd", "they'll", "they're", "they've", "this", "those", "through", "to",
		"too", "under", "until", "up", "very", "was", "wasn't", "we", "we'd", "we'll", "we're", "we've", "were",
		"weren't", "what", "what's", "when", "when's", "where", "where's", "which", "while", "who", "who's",
		"whom", "why", "why's", "with", "won't", "would", "wouldn't", "you", "you'd", "you'll", "you're",
		"you've", "your", "yours", "yourself", "yourselves",
	}

	stopWords := make(map[string]bool)
	for _, word := range words {
		stopWords[word] = true
	}
	return stopWords
}

// getPlaceNames returns a small gazetteer of countries, major cities, and
// regions used to classify capitalized spans as geopolitical entities
func getPlaceNames() map[string]bool {
	places := []string{
		"afghanistan", "africa", "amsterdam", "argentina", "asia", "athens", "australia", "austria",
		"bangkok", "beijing", "belgium", "berlin", "boston", "brazil", "britain", "brussels",
		"cairo", "california", "canada", "chicago", "chile", "china", "colombia", "cuba",
		"delhi", "denmark", "dublin", "egypt", "england", "europe", "finland", "florida", "france",
		"germany", "greece", "hungary", "iceland", "india", "indonesia", "iran", "iraq", "ireland",
		"israel", "istanbul", "italy", "jakarta", "japan", "kenya", "lisbon", "london", "los angeles",
		"madrid", "manila", "melbourne", "mexico", "mexico city", "miami", "milan", "moscow", "mumbai",
		"munich", "netherlands", "new york", "new york city", "new zealand", "nigeria", "norway",
		"osaka", "oslo", "ottawa", "pakistan", "paris", "peru", "philadelphia", "poland", "portugal",
		"prague", "rome", "russia", "scotland", "seattle", "seoul", "shanghai", "singapore", "spain",
		"stockholm", "sweden", "switzerland", "sydney", "taiwan", "texas", "thailand", "tokyo",
		"toronto", "turkey", "ukraine", "united kingdom", "united states", "vienna", "vietnam",
		"wales", "warsaw", "washington",
	}

	placeNames := make(map[string]bool)
	for _, place := range places {
		placeNames[place] = true
	}
	return placeNames
}

// getOrgMarkers returns words that mark a capitalized span as an organization
func getOrgMarkers() map[string]bool {
	markers := []string{
		"agency", "association", "authority", "bank", "bureau", "college", "committee", "company",
		"corp", "corporation", "council", "department", "federation", "foundation", "group", "inc",
		"institute", "institution", "laboratories", "laboratory", "ltd", "ministry", "nations",
		"organization", "society", "union", "university",
	}

	orgMarkers := make(map[string]bool)
	for _, marker := range markers {
		orgMarkers[marker] = true
	}
	return orgMarkers
}
