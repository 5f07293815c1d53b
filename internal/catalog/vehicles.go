package catalog

// Static brand -> models table. Every workshop serves the same catalog; a
// per-workshop catalog would live in the store, but nothing requires it yet.
var vehicles = map[string][]string{
	"Toyota":        {"Corolla", "Hilux", "Yaris", "Etios", "SW4", "RAV4", "Camry"},
	"Volkswagen":    {"Gol", "Polo", "Virtus", "T-Cross", "Nivus", "Saveiro", "Jetta"},
	"Ford":          {"Ka", "Fiesta", "Focus", "EcoSport", "Ranger", "Fusion", "Edge"},
	"Chevrolet":     {"Onix", "Prisma", "S10", "Tracker", "Spin", "Cruze", "Cobalt"},
	"Honda":         {"Civic", "Fit", "HR-V", "City", "WR-V", "CR-V"},
	"Hyundai":       {"HB20", "Creta", "Tucson", "Santa Fe", "ix35"},
	"Nissan":        {"Kicks", "Versa", "March", "Sentra", "Frontier"},
	"Fiat":          {"Uno", "Argo", "Mobi", "Toro", "Strada", "Cronos", "Pulse"},
	"Renault":       {"Sandero", "Logan", "Duster", "Kwid", "Captur"},
	"Jeep":          {"Renegade", "Compass", "Commander", "Wrangler"},
	"Peugeot":       {"208", "2008", "3008", "308"},
	"Citroën":       {"C3", "C4 Cactus", "Aircross", "C4 Lounge"},
	"Kia":           {"Sportage", "Cerato", "Soul", "Picanto"},
	"BMW":           {"320i", "X1", "X3", "X5", "118i"},
	"Mercedes-Benz": {"Classe C", "Classe A", "GLA", "GLC", "Classe E"},
	"Audi":          {"A3", "A4", "Q3", "Q5", "A1"},
	"Mitsubishi":    {"L200", "ASX", "Outlander", "Pajero"},
	"Subaru":        {"Impreza", "Forester", "XV", "Outback"},
	"Chery":         {"Tiggo 2", "Tiggo 5X", "Arrizo 5", "QQ"},
	"Land Rover":    {"Evoque", "Discovery", "Defender", "Range Rover"},
	"Volvo":         {"XC60", "XC40", "XC90", "S60"},
	"JAC":           {"T40", "T50", "T60", "iEV40"},
	"Suzuki":        {"Vitara", "Jimny", "S-Cross", "Swift"},
}

// Vehicles returns the default catalog. The result is a fresh copy so
// callers cannot mutate the shared table.
func Vehicles() map[string][]string {
	out := make(map[string][]string, len(vehicles))
	for brand, models := range vehicles {
		ms := make([]string, len(models))
		copy(ms, models)
		out[brand] = ms
	}
	return out
}
