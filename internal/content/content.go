package content

// FAQEntry is one question and answer pair shown on the FAQ page.
type FAQEntry struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Distributor is a physical store carrying the catalog.
type Distributor struct {
	ID       int    `json:"id"`
	Name     string `json:"nombre"`
	Address  string `json:"direccion"`
	Phone    string `json:"telefono"`
	Email    string `json:"email"`
	Schedule string `json:"horario"`
}

// CompanyValue is one of the values listed on the about page.
type CompanyValue struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AboutInfo is the static company presentation.
type AboutInfo struct {
	History string         `json:"history"`
	Mission string         `json:"mission"`
	Vision  string         `json:"vision"`
	Values  []CompanyValue `json:"values"`
}

// FAQEntries returns the published questions in display order.
func FAQEntries() []FAQEntry {
	return []FAQEntry{
		{
			ID:       1,
			Question: "¿Qué es una biochimenea y cómo funciona?",
			Answer:   "Una biochimenea es un sistema de calefacción ecológico que utiliza bioetanol como combustible, ofreciendo una llama real sin humo, cenizas ni necesidad de instalación. Es ideal para crear ambientes cálidos y acogedores en cualquier espacio, combinando diseño y funcionalidad.",
		},
		{
			ID:       2,
			Question: "¿Son seguras las biochimeneas para interiores?",
			Answer:   "Sí, nuestras biochimeneas están diseñadas con los más altos estándares de seguridad. Incorporan sistemas de protección, como quemadores certificados y materiales resistentes al calor, garantizando un uso seguro en interiores siempre que se sigan las instrucciones de uso.",
		},
		{
			ID:       3,
			Question: "¿Cuánto tiempo dura el bioetanol en una biochimenea?",
			Answer:   "La duración del combustible depende del modelo y la capacidad del quemador, pero en promedio, un litro de bioetanol puede proporcionar entre 3 y 5 horas de llama continua. Esto las hace eficientes y perfectas para disfrutar de largas veladas.",
		},
		{
			ID:       4,
			Question: "¿Requieren instalación o mantenimiento?",
			Answer:   "No, las biochimeneas son portátiles y listas para usar. No necesitan instalación ni conexión a gas o electricidad. Además, su mantenimiento es mínimo: basta con limpiar el quemador y la superficie de vez en cuando para mantenerlas en perfecto estado.",
		},
		{
			ID:       5,
			Question: "¿Dónde puedo comprar el bioetanol para mi biochimenea?",
			Answer:   "Puedes adquirir bioetanol de alta calidad en nuestra tienda online o a través de distribuidores autorizados. Ofrecemos opciones seguras y sostenibles para garantizar el mejor rendimiento de tu biochimenea.",
		},
	}
}

// Distributors returns the official store list.
func Distributors() []Distributor {
	return []Distributor{
		{
			ID:       1,
			Name:     "BioChimeneas Madrid Centro",
			Address:  "Calle Gran Vía 42, 28013 Madrid",
			Phone:    "+34 912 345 678",
			Email:    "madrid@biochimeneas.com",
			Schedule: "Lun-Vie: 10:00-20:00, Sáb: 10:00-14:00",
		},
		{
			ID:       2,
			Name:     "BioChimeneas Barcelona",
			Address:  "Avinguda Diagonal 423, 08008 Barcelona",
			Phone:    "+34 932 345 678",
			Email:    "barcelona@biochimeneas.com",
			Schedule: "Lun-Vie: 10:00-20:00, Sáb: 10:00-14:00",
		},
		{
			ID:       3,
			Name:     "BioChimeneas Valencia",
			Address:  "Calle Colón 34, 46004 Valencia",
			Phone:    "+34 962 345 678",
			Email:    "valencia@biochimeneas.com",
			Schedule: "Lun-Vie: 10:00-20:00, Sáb: 10:00-14:00",
		},
		{
			ID:       4,
			Name:     "BioChimeneas Sevilla",
			Address:  "Avenida de la Constitución 20, 41004 Sevilla",
			Phone:    "+34 952 345 678",
			Email:    "sevilla@biochimeneas.com",
			Schedule: "Lun-Vie: 10:00-20:00, Sáb: 10:00-14:00",
		},
		{
			ID:       5,
			Name:     "BioChimeneas Bilbao",
			Address:  "Gran Vía de Don Diego López de Haro 12, 48001 Bilbao",
			Phone:    "+34 942 345 678",
			Email:    "bilbao@biochimeneas.com",
			Schedule: "Lun-Vie: 10:00-20:00, Sáb: 10:00-14:00",
		},
	}
}

// About returns the company presentation.
func About() AboutInfo {
	return AboutInfo{
		History: "Desde 2010, nos dedicamos a ofrecer soluciones de calefacción ecológicas y sostenibles para hogares modernos.",
		Mission: "Proporcionar soluciones de calefacción innovadoras, ecológicas y seguras que mejoren la calidad de vida de nuestros clientes, respetando el medio ambiente y promoviendo un estilo de vida sostenible.",
		Vision:  "Ser líderes en el mercado de biochimeneas y soluciones de calefacción ecológica, reconocidos por nuestra innovación, calidad y compromiso con la sostenibilidad, contribuyendo a un futuro más limpio y responsable.",
		Values: []CompanyValue{
			{
				Title:       "Innovación",
				Description: "Buscamos constantemente nuevas formas de mejorar nuestros productos y servicios para satisfacer las necesidades cambiantes de nuestros clientes.",
			},
			{
				Title:       "Sostenibilidad",
				Description: "Nos comprometemos a ofrecer productos respetuosos con el medio ambiente, reduciendo nuestra huella ecológica y promoviendo prácticas sostenibles.",
			},
			{
				Title:       "Calidad",
				Description: "Nos esforzamos por ofrecer productos de la más alta calidad, seguros y duraderos, que superen las expectativas de nuestros clientes.",
			},
			{
				Title:       "Servicio",
				Description: "Ponemos a nuestros clientes en el centro de todo lo que hacemos, ofreciendo un servicio personalizado, atento y profesional.",
			},
		},
	}
}
