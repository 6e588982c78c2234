package category

import (
	"regexp"
	"strings"

	"github.com/jstello/SMS-finance-sub000/internal/model"
)

// domainScanner maps a family of diagnostic substrings to fixed keyword tags.
// A hit contributes the tags, never the matched text itself.
type domainScanner struct {
	pattern *regexp.Regexp
	tags    []string
}

var domainScanners = []domainScanner{
	{regexp.MustCompile(`restaurante|comida|menu|almuerzo|cena|desayuno|caf[ée]|pizza|hamburguesa|rappi|ifood|domicilios?|uber eats|delivery`),
		[]string{"food", "restaurant"}},
	{regexp.MustCompile(`taxi|uber|didi|cabify|transporte|gasolina|combustible|parqueadero|estacionamiento|peaje|metro|transmilenio|bus|pasaje`),
		[]string{"transportation"}},
	{regexp.MustCompile(`tienda|compra|mercado|super|supermercado|mall|centro comercial|ropa|calzado|zapatos|amazon|[ée]xito|carulla|jumbo|alkosto|falabella|zara`),
		[]string{"shopping"}},
	{regexp.MustCompile(`pel[íi]cula|cine|teatro|concierto|festival|entretenimiento|evento|boleta|videojuego|juego`),
		[]string{"entertainment"}},
	{regexp.MustCompile(`m[ée]dico|doctor|cl[íi]nica|hospital|eps|medicina|farmacia|droguer[íi]a|medicamento|salud|consulta|examen|laboratorio|terapia`),
		[]string{"health"}},
	{regexp.MustCompile(`arriendo|alquiler|hipoteca|casa|apartamento|servicios|agua|luz|energ[íi]a|electricidad|gas|internet|telefon[íi]a|mantenimiento|reparaci[óo]n`),
		[]string{"home", "housing"}},
	{regexp.MustCompile(`educaci[óo]n|universidad|colegio|escuela|curso|matr[íi]cula|clase|capacitaci[óo]n|libro|librer[íi]a|academia|taller|seminario`),
		[]string{"education"}},
	{regexp.MustCompile(`sal[óo]n|belleza|barber[íi]a|corte|peinado|spa|gimnasio|gym|entrenamiento|est[ée]tica|maquillaje|manicure|pedicure`),
		[]string{"personal", "beauty"}},
	{regexp.MustCompile(`n[óo]mina|sueldo|salario|honorario|ingreso|abono|dep[óo]sito|transferencia recibida|consignaci[óo]n|recaudo`),
		[]string{"income", "salary"}},
	{regexp.MustCompile(`vuelo|avi[óo]n|aerol[íi]nea|hotel|hospedaje|viaje|booking|airbnb|avianca|latam`),
		[]string{"travel"}},
	{regexp.MustCompile(`netflix|disney|spotify|apple music|hbo|prime video|suscripci[óo]n|membres[íi]a|mensualidad`),
		[]string{"subscription", "entertainment"}},
}

// Keywords builds the case-lowered keyword set for one transaction: the
// provider (whole, plus tokens longer than 3 chars), the contact name, and
// the fixed tags contributed by every domain scanner that hits the
// description.
func Keywords(tx model.Transaction) map[string]struct{} {
	keywords := make(map[string]struct{})

	if tx.Provider != "" {
		provider := strings.ToLower(tx.Provider)
		keywords[provider] = struct{}{}
		for _, word := range strings.Fields(provider) {
			if len(word) > 3 {
				keywords[word] = struct{}{}
			}
		}
	}

	if tx.ContactName != "" {
		keywords[strings.ToLower(tx.ContactName)] = struct{}{}
	}

	body := strings.ToLower(tx.Description)
	for _, s := range domainScanners {
		if s.pattern.MatchString(body) {
			for _, tag := range s.tags {
				keywords[tag] = struct{}{}
			}
		}
	}

	return keywords
}
