package config

// DefaultDocuments is the sample collection used when no documents are given.
func DefaultDocuments() []string {
	return []string{
		"El perro ladra fuerte en el parque.",
		"El gato maúlla suavemente durante la noche.",
		"El perro y el gato juegan juntos en el jardín.",
		"Los niños corren y se divierten en el parque.",
		"La música suena muy alta en la fiesta.",
		"Los pájaros cantan hermosas melodías al amanecer.",
	}
}

// DefaultSuggestions are the questions offered for the sample collection.
func DefaultSuggestions() []string {
	return []string{
		"¿Dónde juegan el perro y el gato?",
		"¿Qué hacen los niños en el parque?",
		"¿Cuándo cantan los pájaros?",
		"¿Dónde suena la música alta?",
		"¿Qué animal maúlla durante la noche?",
	}
}
