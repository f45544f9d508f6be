package config

// DefaultSymbols is the built-in NSE ticker universe scanned when the config
// file does not supply its own list.
var DefaultSymbols = []string{
	"3MINDIA", "AHLUCONT", "AIAENG", "AJANTPHARM", "AKZOINDIA", "ALKEM", "ANANDRATHI",
	"ANGELONE", "APARINDS", "APOLLOHOSP", "ARCHEM", "ASIANPAINT", "ASTRAL", "ASTRAZEN", "AWL",
	"AVANTIFEED", "BAJAJ-AUTO", "BAJAJHLDNG", "BASF", "BAYERCROP", "BEL", "BERGEPAINT", "BIKAJI",
	"BLUESTARCO", "BOSCHLTD", "BSOFT", "BSE", "CAPLIPOINT", "CARBORUNIV", "CAMS", "CASTROLIND",
	"CELLO", "CERA", "CHAMBLFERT", "CIPLA", "CMSINFO", "COALINDIA", "COCHINSHIP", "COLPAL",
	"CONCORDBIO", "COROMANDEL", "CROMPTON", "CRISIL", "CUMMINSIND", "DABUR", "DBCORP", "DEEPAKNTR",
	"DHANUKA", "DIXON", "DMART", "DRREDDY", "ECLERX", "EICHERMOT", "EIDPARRY", "EIHOTEL", "ELECON",
	"EMAMILTD", "ENGINERSIN", "ERIS", "FINEORG", "FORCEMOT", "FORTIS", "GANESHHOUC", "GARFIBRES",
	"GHCL", "GILLETTE", "GLAXO", "GODFRYPHLP", "GODREJCP", "GODREJIND", "GRINDWELL", "GRSE", "GSPL",
	"GUJGASLTD", "HAL", "HAPPYFORGE", "HAVELLS", "HCLTECH", "HEROMOTOCO", "HINDUNILVR", "HONAUT",
	"ICICIGI", "IEX", "IGL", "IMFA", "INDHOTEL", "INDIAMART", "INFY", "INGERRAND", "INTELLECT",
	"IONEXCHANG", "IRCTC", "ITC", "JBCHEPHARM", "JAIBALAJI", "JIOFIN", "JWL", "JYOTHYLAB",
	"JYOTICNC", "KAJARIACER", "KAMS", "KFINTECH", "KEI", "KIRLOSBROS", "KPIGREEN", "KPITTECH",
	"KPRMILL", "KSCL", "LALPATHLAB", "LICI", "LTIM", "LTTS", "MAHAPEXLTD", "MAHSEAMLES", "MANKIND",
	"MANINFRA", "MARICO", "MARUTI", "MCX", "MCDHOLDING", "MEDANTA", "MGL", "MISHTANN", "MPHASIS",
	"MRF", "MSUMI", "NAM-INDIA", "NATCOPHARM", "NBCC", "NEULANDLAB", "NEWGEN", "NESCO", "NIITLTD",
	"NMDC", "OFSS", "PAGEIND", "PETRONET", "PFIZER", "PGHH", "PGHL", "PIDILITIND", "PIIND", "POLYCAB",
	"POLYMED", "RADICO", "RAILTEL", "RATNAMANI", "RELAXO", "RITES", "ROUTE", "SANOFI", "SCHAEFFLER",
	"SEQUENT", "SHARDAMOTR", "SHAREINDIA", "SHRIPISTON", "SIEMENS", "SKFINDIA", "STYRENIX",
	"SUMICHEM", "SUNTV", "SUPREMEIND", "SURYAROSNI", "TANLA", "TATAELXSI", "TATAMOTORS", "TATATECH",
	"TBOTEK", "TEAMLEASE", "TECHM", "TIINDIA", "TIMKEN", "TITAGARH", "TRITURBINE", "UBL",
	"ULTRACEMCO", "UNITDSPR", "UPL", "URJAGLO", "USHAMART", "UTIAMC", "VBL", "VESUVIUS", "VOLTAMP",
	"VSTIND", "WSTCSTPAPR", "ZENSARTECH", "ZFCVINDIA", "ZENTEC",
}
