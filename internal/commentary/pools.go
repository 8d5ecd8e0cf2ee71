package commentary

// Fixed phrase pools, loaded once and never mutated at runtime. The voice is
// deliberately Argentine barrio football; display copy stays in Spanish.

// TeamNamePairs are the fallback display-name pairs for the two sides.
var TeamNamePairs = [][2]string{
	{"Los Mismos de Siempre", "Los que Faltan"},
	{"La Banda del Gol", "Los Troncos FC"},
	{"Los Cracks del Potrero", "Los Guerreros del Pozo"},
	{"La Pesada del Barrio", "Los Pibes de la Esquina"},
	{"Los Inventados por Dios", "Los Hijos del Rigor"},
	{"La Máquina del Pueblo", "Los Gladiadores del Asfalto"},
	{"Los que Corren Siempre", "Los que Piensan con los Pies"},
	{"El Rejunte Letal", "La Cooperativa del Gol"},
	{"Los Fenómenos del Fulbito", "Los Imparables del Potrero"},
	{"Los Muñecos del Barrio", "Los Grosos de la Cuadra"},
	{"Los Capos de la Pelota", "Los Picantes del Fondo"},
	{"La Topadora del Oeste", "Los Atómicos del Sur"},
	{"Los Rústicos FC", "Los Elegantes del Pasto"},
}

// Nickname pools keyed by role.
var (
	nicknamesGoalkeeper = []string{"La Muralla", "El Pulpo", "Manos de Piedra", "El Candado", "San Martín del Arco"}
	nicknamesDefender   = []string{"El Mariscal", "El Caudillo", "La Roca", "El Escudero", "El Mastín", "El Sheriff"}
	nicknamesMidfielder = []string{"El Cerebro", "El General", "El Motor", "El Reloj", "La Brújula", "El Equilibrio"}
	nicknamesForward    = []string{"El As de Espadas", "El Verdugo", "El Peligro", "El Oportunista", "El Puñal", "El Tanque"}
	nicknamesUtility    = []string{"El Todoterreno", "El Soldado", "El Socio", "El Comodín del Técnico", "El Multiuso", "El Camaleón"}
)

// Companion descriptive phrases, role-matched to the nickname pools.
var (
	phrasesGoalkeeper = []string{"Garantía absoluta bajo los tres palos", "Achica y se agranda cuando importa", "Seguridad y reflejos en el arco", "El último bastión del equipo"}
	phrasesDefender   = []string{"Impasable en la cueva", "Orden y marca en el fondo", "Cierra todo atrás con autoridad", "No pasa ni el viento", "La cueva está cerrada con candado"}
	phrasesMidfielder = []string{"Maneja los tiempos del equipo", "Ida y vuelta constante", "Pases gol quirúrgicos", "Distribuye como nadie", "Rueda de auxilio en el medio"}
	phrasesForward    = []string{"Olfato goleador letal", "Gol y velocidad", "Peligro constante en el ataque", "No perdona frente al arco", "Definición y gambeta"}
	phrasesUtility    = []string{"Aporta en todos lados", "Apoyo constante para el equipo", "Entrega y actitud siempre", "Corazón y compromiso"}
)
