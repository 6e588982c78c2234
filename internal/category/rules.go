package category

// KeywordRules is the static category-name → diagnostic-substring table the
// scoring step matches extracted keywords against. It is plain data, separate
// from the scoring logic, keyed by the category names callers are expected to
// supply; categories with no entry here never score.
var KeywordRules = map[string][]string{
	"Groceries": {"supermercado", "mercado", "éxito", "carulla", "jumbo", "d1", "ara",
		"justo y bueno", "food", "grocery", "groceries", "super"},

	"Restaurants": {"restaurant", "restaurante", "comida", "almuerzo", "cena", "comidas",
		"rappi", "ifood", "domicilio", "domicilios", "uber eats", "delivery", "food"},

	"Food & Dining": {"food", "restaurant", "restaurante", "comida", "almuerzo", "cena",
		"rappi", "ifood", "domicilio", "delivery", "supermercado", "mercado", "grocery"},

	"Transportation": {"transportation", "transporte", "taxi", "uber", "didi", "cabify",
		"gasolina", "combustible", "parqueadero", "peaje", "metro", "transmilenio", "bus"},

	"Shopping": {"shopping", "tienda", "compra", "ropa", "calzado", "zapatos", "mall",
		"centro comercial", "amazon", "falabella", "zara"},

	"Bills": {"bill", "servicio", "agua", "luz", "energía", "gas", "internet", "telefonía",
		"celular", "factura", "recibo", "pago"},

	"Utilities": {"bill", "servicio", "agua", "luz", "energía", "gas", "internet",
		"telefonía", "celular", "factura", "recibo"},

	"Entertainment": {"entertainment", "entretenimiento", "película", "cine", "teatro",
		"concierto", "festival", "netflix", "disney", "spotify", "evento"},

	"Health": {"health", "médico", "doctor", "clínica", "hospital", "medicina", "farmacia",
		"droguería", "medicamento", "salud", "consulta"},

	"Housing": {"home", "housing", "arriendo", "alquiler", "hipoteca", "casa", "apartamento",
		"mantenimiento", "reparación"},

	"Income": {"income", "nómina", "sueldo", "salario", "pago", "honorario", "ingreso",
		"abono", "depósito", "transferencia recibida", "consignación"},

	"Payroll": {"income", "salary", "nómina", "sueldo", "salario", "honorario", "ingreso",
		"abono", "depósito", "consignación"},

	"Education": {"education", "educación", "universidad", "colegio", "escuela", "curso",
		"matrícula", "clase", "capacitación", "libro"},

	"Personal Care": {"personal", "beauty", "salón", "belleza", "barbería", "corte",
		"spa", "gimnasio", "gym", "entrenamiento", "estética"},

	"Personal": {"personal", "beauty", "salón", "belleza", "barbería", "corte",
		"spa", "gimnasio", "gym", "entrenamiento", "estética"},

	"Travel": {"travel", "viaje", "vuelo", "hotel", "hospedaje", "aerolínea", "avianca",
		"latam", "booking", "airbnb", "pasaje"},

	"Subscriptions": {"subscription", "suscripción", "membresía", "mensualidad", "netflix",
		"disney", "spotify", "hbo", "prime video"},

	"Other": {"other", "otro"},
}
