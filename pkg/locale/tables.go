package locale

// Content tables per locale. Native-script and diacritic entries are kept
// on purpose: importers must survive them.
var locales = map[string]*Locale{
	"en": {
		Code:       "en",
		firstNames: []string{"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda", "David", "Elizabeth", "William", "Susan"},
		lastNames:  []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Wilson", "Anderson", "Taylor", "Moore"},
		companies:  []string{"Acme Corporation", "Globex Industries", "Initech", "Umbrella Holdings", "Stark Logistics", "Wayne Enterprises", "Pied Piper", "Hooli"},
		domainWords: []string{
			"summer", "winter", "dragon", "monkey", "shadow", "master", "silver", "golden",
			"thunder", "rocket", "planet", "forest", "cobalt", "harbor", "willow", "canyon",
		},
		notes: []string{
			"Remember to update billing details next month.",
			"This account uses the backup email address.",
			"Security questions are stored in the shared drive.",
			"Old password kept for the archived workstation.",
		},
		weakPasswords: []string{"password", "123456", "qwerty", "letmein", "welcome", "admin", "iloveyou", "monkey", "dragon", "sunshine", "princess", "football"},
	},
	"de": {
		Code:       "de",
		firstNames: []string{"Lukas", "Anna", "Jonas", "Lena", "Felix", "Marie", "Maximilian", "Laura", "Jürgen", "Sabine", "Björn", "Käthe"},
		lastNames:  []string{"Müller", "Schmidt", "Schneider", "Fischer", "Weber", "Meyer", "Wagner", "Becker", "Schulz", "Hoffmann", "Schäfer", "Koch"},
		companies:  []string{"Müller & Söhne GmbH", "Bergmann Technik AG", "Rheinland Logistik", "Schwarzwald Software", "Nordsee Handel KG", "Alpenblick Systeme"},
		domainWords: []string{
			"sommer", "winter", "schatten", "drache", "silber", "donner", "wald", "berg",
			"fluss", "himmel", "sturm", "adler",
		},
		notes: []string{
			"Passwort beim nächsten Login ändern.",
			"Zugangsdaten mit der Buchhaltung geteilt.",
			"Sicherheitsfragen liegen im Tresor.",
			"Altes Konto, wird bald stillgelegt.",
		},
		weakPasswords: []string{"passwort", "hallo123", "schalke04", "fussball", "qwertz", "bayern", "ichliebedich", "sommer2024"},
	},
	"es": {
		Code:       "es",
		firstNames: []string{"José", "María", "Antonio", "Carmen", "Manuel", "Lucía", "Francisco", "Isabel", "Javier", "Pilar", "Andrés", "Sofía"},
		lastNames:  []string{"García", "Rodríguez", "González", "Fernández", "López", "Martínez", "Sánchez", "Pérez", "Gómez", "Martín", "Jiménez", "Ruiz"},
		companies:  []string{"Construcciones Ibéricas SA", "Grupo Meridiano", "Tecnologías del Sur", "Comercial Atlántico", "Energía Solar Levante", "Transportes La Mancha"},
		domainWords: []string{
			"verano", "invierno", "sombra", "dragon", "plata", "trueno", "bosque", "montana",
			"cielo", "tormenta", "aguila", "fuego",
		},
		notes: []string{
			"Cambiar la contraseña el próximo mes.",
			"Cuenta compartida con el equipo de ventas.",
			"Las preguntas de seguridad están en la caja fuerte.",
			"Cuenta antigua, pendiente de migración.",
		},
		weakPasswords: []string{"contraseña", "123456", "hola123", "futbol", "españa", "barcelona", "realmadrid", "teamo"},
	},
	"fr": {
		Code:       "fr",
		firstNames: []string{"Jean", "Marie", "Pierre", "Sophie", "Michel", "Camille", "Philippe", "Élodie", "François", "Chloé", "Étienne", "Amélie"},
		lastNames:  []string{"Martin", "Bernard", "Dubois", "Thomas", "Robert", "Richard", "Petit", "Durand", "Leroy", "Moreau", "Lefèvre", "Rousseau"},
		companies:  []string{"Ateliers de Provence", "Groupe Lumière", "Technologies du Rhône", "Maison Beaumont", "Transports de l'Ouest", "Énergie Nouvelle SARL"},
		domainWords: []string{
			"ete", "hiver", "ombre", "dragon", "argent", "tonnerre", "foret", "montagne",
			"ciel", "orage", "aigle", "etoile",
		},
		notes: []string{
			"Changer le mot de passe le mois prochain.",
			"Compte partagé avec l'équipe comptable.",
			"Les codes de secours sont dans le coffre.",
			"Ancien compte, migration prévue.",
		},
		weakPasswords: []string{"motdepasse", "azerty", "123456", "soleil", "bonjour", "chocolat", "marseille", "doudou"},
	},
	"it": {
		Code:       "it",
		firstNames: []string{"Giuseppe", "Maria", "Antonio", "Anna", "Giovanni", "Francesca", "Marco", "Chiara", "Alessandro", "Giulia", "Niccolò", "Elena"},
		lastNames:  []string{"Rossi", "Russo", "Ferrari", "Esposito", "Bianchi", "Romano", "Colombo", "Ricci", "Marino", "Greco", "Conti", "De Luca"},
		companies:  []string{"Officine Lombarde SpA", "Gruppo Adriatico", "Tecnologie Toscane", "Commercio Mediterraneo", "Energia Verde Italia", "Trasporti Veneti"},
		domainWords: []string{
			"estate", "inverno", "ombra", "drago", "argento", "tuono", "foresta", "montagna",
			"cielo", "tempesta", "aquila", "stella",
		},
		notes: []string{
			"Cambiare la password il mese prossimo.",
			"Account condiviso con l'amministrazione.",
			"Le domande di sicurezza sono in cassaforte.",
			"Vecchio account, migrazione in corso.",
		},
		weakPasswords: []string{"password", "juventus", "123456", "ciao123", "napoli", "amore", "ferrari", "calcio"},
	},
	"nl": {
		Code:       "nl",
		firstNames: []string{"Daan", "Emma", "Sem", "Julia", "Lucas", "Sophie", "Milan", "Lotte", "Jesse", "Fleur", "Thijs", "Sanne"},
		lastNames:  []string{"de Jong", "Jansen", "de Vries", "van den Berg", "van Dijk", "Bakker", "Visser", "Smit", "Meijer", "Mulder", "de Boer", "Vos"},
		companies:  []string{"Hollandse Handel BV", "Noordzee Techniek", "Tulpen Logistiek", "Delta Software Groep", "Polder Energie", "Randstad Transport"},
		domainWords: []string{
			"zomer", "winter", "schaduw", "draak", "zilver", "donder", "bos", "berg",
			"hemel", "storm", "arend", "ster",
		},
		notes: []string{
			"Wachtwoord volgende maand wijzigen.",
			"Account gedeeld met de administratie.",
			"Herstelcodes liggen in de kluis.",
			"Oud account, migratie gepland.",
		},
		weakPasswords: []string{"wachtwoord", "123456", "welkom01", "voetbal", "ajax", "oranje", "amsterdam", "geheim"},
	},
	"pl": {
		Code:       "pl",
		firstNames: []string{"Jakub", "Zuzanna", "Szymon", "Julia", "Kacper", "Maja", "Filip", "Zofia", "Michał", "Hanna", "Wojciech", "Aleksandra"},
		lastNames:  []string{"Nowak", "Kowalski", "Wiśniewski", "Wójcik", "Kowalczyk", "Kamiński", "Lewandowski", "Zieliński", "Szymański", "Woźniak", "Dąbrowski", "Kozłowski"},
		companies:  []string{"Polskie Systemy Sp. z o.o.", "Grupa Bałtyk", "Technologie Mazowsze", "Handel Karpaty", "Energia Wisła", "Transport Śląsk"},
		domainWords: []string{
			"lato", "zima", "cien", "smok", "srebro", "grzmot", "las", "gora",
			"niebo", "burza", "orzel", "gwiazda",
		},
		notes: []string{
			"Zmienić hasło w przyszłym miesiącu.",
			"Konto współdzielone z księgowością.",
			"Kody zapasowe są w sejfie.",
			"Stare konto, planowana migracja.",
		},
		weakPasswords: []string{"haslo", "123456", "polska", "zaq12wsx", "legia", "kochanie", "misiek", "warszawa"},
	},
	"pt": {
		Code:       "pt",
		firstNames: []string{"João", "Maria", "Pedro", "Ana", "Tiago", "Beatriz", "Miguel", "Inês", "Rafael", "Carolina", "Gonçalo", "Sofia"},
		lastNames:  []string{"Silva", "Santos", "Ferreira", "Pereira", "Oliveira", "Costa", "Rodrigues", "Martins", "Sousa", "Fernandes", "Gonçalves", "Almeida"},
		companies:  []string{"Construções do Atlântico", "Grupo Tejo", "Tecnologias Lusitanas", "Comércio do Porto", "Energia do Alentejo", "Transportes Mondego"},
		domainWords: []string{
			"verao", "inverno", "sombra", "dragao", "prata", "trovao", "floresta", "montanha",
			"ceu", "tempestade", "aguia", "estrela",
		},
		notes: []string{
			"Mudar a palavra-passe no próximo mês.",
			"Conta partilhada com a contabilidade.",
			"Os códigos de recuperação estão no cofre.",
			"Conta antiga, migração pendente.",
		},
		weakPasswords: []string{"palavrapasse", "123456", "benfica", "porto", "sporting", "amor123", "lisboa", "futebol"},
	},
	"ja": {
		Code:       "ja",
		firstNames: []string{"太郎", "花子", "健太", "美咲", "翔太", "陽菜", "大輔", "さくら", "拓海", "葵", "悠斗", "結衣"},
		lastNames:  []string{"佐藤", "鈴木", "高橋", "田中", "伊藤", "渡辺", "山本", "中村", "小林", "加藤", "吉田", "山田"},
		companies:  []string{"株式会社サクラ産業", "東京テクノロジー", "大阪物流株式会社", "富士ソフトウェア", "北海道商事", "九州エナジー"},
		domainWords: []string{
			"natsu", "fuyu", "kage", "ryu", "gin", "kaminari", "mori", "yama",
			"sora", "arashi", "washi", "hoshi",
		},
		notes: []string{
			"来月パスワードを変更してください。",
			"経理チームと共有しているアカウントです。",
			"復旧コードは金庫に保管されています。",
			"旧アカウント、移行予定。",
		},
		weakPasswords: []string{"password", "123456", "sakura", "nippon", "arigatou", "yamada123", "tokyo2024", "baseball"},
	},
	"ru": {
		Code:       "ru",
		firstNames: []string{"Александр", "Елена", "Дмитрий", "Ольга", "Сергей", "Наталья", "Андрей", "Татьяна", "Алексей", "Ирина", "Михаил", "Анна"},
		lastNames:  []string{"Иванов", "Смирнов", "Кузнецов", "Попов", "Васильев", "Петров", "Соколов", "Михайлов", "Новиков", "Фёдоров", "Морозов", "Волков"},
		companies:  []string{"ООО Северные Технологии", "Группа Волга", "Сибирь Софт", "Торговый Дом Москва", "Энергия Урала", "Балтийская Логистика"},
		domainWords: []string{
			"leto", "zima", "ten", "drakon", "serebro", "grom", "les", "gora",
			"nebo", "burya", "orel", "zvezda",
		},
		notes: []string{
			"Сменить пароль в следующем месяце.",
			"Аккаунт общий с бухгалтерией.",
			"Резервные коды хранятся в сейфе.",
			"Старый аккаунт, планируется перенос.",
		},
		weakPasswords: []string{"parol", "123456", "qwerty", "privet", "lyubov", "moskva", "spartak", "medved"},
	},
	"zh": {
		Code:       "zh",
		firstNames: []string{"伟", "芳", "娜", "敏", "静", "磊", "军", "洋", "勇", "艳", "杰", "涛"},
		lastNames:  []string{"王", "李", "张", "刘", "陈", "杨", "黄", "赵", "吴", "周", "徐", "孙"},
		companies:  []string{"华信科技有限公司", "长城贸易集团", "江南软件", "北方物流股份", "东方能源", "珠江电子"},
		domainWords: []string{
			"xiatian", "dongtian", "yingzi", "long", "yin", "leiming", "senlin", "shan",
			"tiankong", "fengbao", "laoying", "xingxing",
		},
		notes: []string{
			"请在下个月更改密码。",
			"此账户与财务团队共享。",
			"恢复代码保存在保险柜中。",
			"旧账户，待迁移。",
		},
		weakPasswords: []string{"mima123", "123456", "woaini", "zhangwei", "beijing", "shanghai", "gongfu", "xiongmao"},
	},
}
