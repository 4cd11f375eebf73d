package ai

// MaxRequiredTags is the maximum number of tags an extractor may return.
const MaxRequiredTags = 8

// ExtractedQuery is the structured result of analyzing a problem statement.
type ExtractedQuery struct {
	// RequiredTags lists the most precise, non-overlapping technical skill
	// tags, ordered by importance (most important first).
	RequiredTags []string

	// KeyDomain maps each relevant domain name to the importance of
	// expertise from that domain, in [0, 1]. May be empty.
	KeyDomain map[string]float64

	// Explanation is a brief description of how the problem can be
	// approached using the required tags.
	Explanation string
}

// DomainCatalog defines the domain names extractors choose key domains from.
// Each name may carry a parenthetical qualifier; only the text before the
// parenthesis is matched against expert departments.
var DomainCatalog = []string{
	"Biochemistry (BC)",
	"Centre for Ecological Sciences (CES)",
	"Centre for Neuroscience (CNS)",
	"Microbiology and Cell Biology (MCB)",
	"Molecular Biophysics Unit (MBU)",
	"Department of Developmental Biology and Genetics (DBG)",
	"Inorganic and Physical Chemistry (IPC)",
	"Materials Research Centre (MRC)",
	"Organic Chemistry (OC)",
	"Solid State and Structural Chemistry Unit (SSCU)",
	"Computer Science and Automation (CSA)",
	"Electrical Communication Engineering (ECE)",
	"Electrical Engineering (EE)",
	"Electronic Systems Engineering (ESE)",
	"Department of Bioengineering (BE)",
	"Centre for Nano Science and Engineering (CeNSE)",
	"Computational and Data Sciences (CDS)",
	"Management Studies (MS)",
	"Supercomputer Education and Research Centre (SERC)",
	"Aerospace Engineering (AE)",
	"Centre for Atmospheric and Oceanic Sciences (CAOS)",
	"Centre for Earth Sciences (CEaS)",
	"Department of Design and Manufacturing (DM)",
	"Centre for Sustainable Technologies (CST)",
	"Chemical Engineering (CE)",
	"Civil Engineering (CiE)",
	"Materials Engineering (Mat. Eng.)",
	"Mechanical Engineering (ME)",
	"Astronomy and Astrophysics Programme (AAP)",
	"Centre for High Energy Physics (CHEP)",
	"Instrumentation and Applied Physics (IAP)",
	"Mathematics (MA)",
	"Physics (PHY)",
}
