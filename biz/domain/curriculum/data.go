package curriculum

import "github.com/xh-polaris/virtual-classroom/biz/infrastructure/consts"

var builtinTutors = []Tutor{
	{Track: consts.DefaultTrack, Name: "Prof. Mathew", Subject: "Mathematics", Description: "Algebra, Geometry, Calculus & Problem Solving"},
	{Track: consts.ScienceTrack, Name: "Dr. Science", Subject: "Science", Description: "Physics, Chemistry & Biology Explained Clearly"},
	{Track: "homework", Name: "Teacher Alex", Subject: "Homework Help", Description: "Assignment Support & Exam Preparation"},
}

var builtinTopics = map[string]map[string][]Topic{
	consts.DefaultTrack: {
		"5": {
			{Id: "m1", Name: "Basic Addition & Subtraction", Description: "Learn to add and subtract numbers up to 1000", Sections: []string{"Column method", "Mental maths", "Word problems"}},
			{Id: "m2", Name: "Times Tables", Description: "Master multiplication tables from 2 to 12", Sections: []string{"2x table", "5x table", "10x table", "Mixed practice"}},
			{Id: "m3", Name: "Fractions Basics", Description: "Introduction to fractions and simple operations", Sections: []string{"What are fractions?", "Equivalent fractions", "Simple addition"}},
			{Id: "m4", Name: "Place Value", Description: "Understanding ones, tens, hundreds, thousands", Sections: []string{"Reading numbers", "Writing numbers", "Comparing numbers"}},
			{Id: "m5", Name: "Simple Shapes", Description: "2D and 3D shapes basics", Sections: []string{"Squares & rectangles", "Triangles", "Circles", "3D shapes"}},
		},
		"6": {
			{Id: "m1", Name: "Long Division", Description: "Master division with remainders", Sections: []string{"Basic division", "With remainders", "Word problems"}},
			{Id: "m2", Name: "Decimals", Description: "Understanding and operating with decimals", Sections: []string{"Place value", "Addition & subtraction", "Multiplication"}},
			{Id: "m3", Name: "Geometry Basics", Description: "Shapes, angles, and area", Sections: []string{"2D shapes", "Angles", "Area calculation"}},
			{Id: "m4", Name: "Percentages", Description: "Introduction to percentages", Sections: []string{"What are percentages?", "Simple percentages", "Real-world problems"}},
			{Id: "m5", Name: "Negative Numbers", Description: "Understanding numbers below zero", Sections: []string{"Number line", "Comparing", "Simple operations"}},
		},
		"7": {
			{Id: "m1", Name: "Algebraic Expressions", Description: "Introduction to algebra and variables", Sections: []string{"What is algebra?", "Simplifying expressions", "Substitution"}},
			{Id: "m2", Name: "Ratio and Proportion", Description: "Understanding ratios and proportional relationships", Sections: []string{"Basic ratios", "Equivalent ratios", "Real-world problems"}},
			{Id: "m3", Name: "Probability", Description: "Chance, likelihood, and basic probability", Sections: []string{"Probability scale", "Calculating probability", "Experimental vs theoretical"}},
			{Id: "m4", Name: "Coordinates & Graphs", Description: "Plotting points and reading graphs", Sections: []string{"Coordinate plane", "Plotting points", "Line graphs"}},
			{Id: "m5", Name: "Prime Numbers", Description: "Primes, factors, and multiples", Sections: []string{"Prime numbers", "Factors", "Multiples", "Prime factorisation"}},
		},
		"8": {
			{Id: "m1", Name: "Linear Equations", Description: "Solving equations with one variable", Sections: []string{"One-step equations", "Two-step equations", "Equations with brackets"}},
			{Id: "m2", Name: "Pythagoras Theorem", Description: "Right-angled triangles and Pythagoras", Sections: []string{"The theorem", "Finding hypotenuse", "Finding shorter sides"}},
			{Id: "m3", Name: "Statistics", Description: "Data handling and statistical analysis", Sections: []string{"Mean, median, mode", "Range", "Data representation"}},
			{Id: "m4", Name: "Sequences", Description: "Number patterns and sequences", Sections: []string{"Linear sequences", "Finding nth term", "Geometric sequences"}},
			{Id: "m5", Name: "Transformations", Description: "Translation, rotation, reflection", Sections: []string{"Reflection", "Rotation", "Translation", "Enlargement"}},
		},
		"9": {
			{Id: "m1", Name: "Quadratic Equations", Description: "Solving quadratics by factorising and formula", Sections: []string{"Factorising", "Quadratic formula", "Graphical solutions"}},
			{Id: "m2", Name: "Trigonometry", Description: "Sine, cosine, and tangent ratios", Sections: []string{"SOH CAH TOA", "Finding sides", "Finding angles"}},
			{Id: "m3", Name: "Circle Theorems", Description: "Properties of circles and angles", Sections: []string{"Circle parts", "Angle properties", "Tangent theorems"}},
			{Id: "m4", Name: "Vectors", Description: "Vector operations and applications", Sections: []string{"Vector basics", "Addition & subtraction", "Magnitude"}},
			{Id: "m5", Name: "Functions", Description: "Function notation and composite functions", Sections: []string{"What are functions?", "f(x) notation", "Composite functions"}},
		},
	},
	consts.ScienceTrack: {
		"5": {
			{Id: "s1", Name: "Plants and Growth", Description: "How plants grow and what they need", Sections: []string{"Plant parts", "Photosynthesis intro", "Life cycle"}},
			{Id: "s2", Name: "States of Matter", Description: "Solid, liquid, and gas", Sections: []string{"Three states", "Changing states", "Examples"}},
			{Id: "s3", Name: "Living Things", Description: "Characteristics of living organisms", Sections: []string{"MRS GREN", "Animals vs plants", "Habitats"}},
			{Id: "s4", Name: "Light and Sound", Description: "Basics of light and sound energy", Sections: []string{"Light sources", "Shadows", "Sound vibrations"}},
			{Id: "s5", Name: "Earth and Space", Description: "Our planet and the solar system", Sections: []string{"Day and night", "Seasons", "Planets"}},
		},
		"6": {
			{Id: "s1", Name: "Human Body Systems", Description: "Digestive, respiratory, and circulatory systems", Sections: []string{"Digestive system", "Breathing", "Blood circulation"}},
			{Id: "s2", Name: "Electricity", Description: "Basic electrical circuits", Sections: []string{"Simple circuits", "Conductors & insulators", "Safety"}},
			{Id: "s3", Name: "Materials & Changes", Description: "Physical and chemical changes", Sections: []string{"States of matter", "Melting & boiling", "Reactions"}},
			{Id: "s4", Name: "Forces & Magnets", Description: "Introduction to forces and magnetism", Sections: []string{"Push & pull", "Magnetic materials", "Poles"}},
			{Id: "s5", Name: "Animals & Habitats", Description: "How animals adapt to their environment", Sections: []string{"Food chains", "Adaptations", "Conservation"}},
		},
		"7": {
			{Id: "s1", Name: "Cell Biology", Description: "Structure and function of cells", Sections: []string{"Animal cells", "Plant cells", "Specialised cells"}},
			{Id: "s2", Name: "Chemical Reactions", Description: "Introduction to chemistry", Sections: []string{"Elements & compounds", "Simple reactions", "Word equations"}},
			{Id: "s3", Name: "Energy Transfer", Description: "Forms of energy and transfers", Sections: []string{"Energy types", "Energy chains", "Conservation"}},
			{Id: "s4", Name: "Reproduction", Description: "Human and plant reproduction", Sections: []string{"Human reproductive system", "Plant pollination", "Seed dispersal"}},
			{Id: "s5", Name: "Acids & Alkalis", Description: "Introduction to acids and bases", Sections: []string{"pH scale", "Indicators", "Neutralisation"}},
		},
		"8": {
			{Id: "s1", Name: "Forces and Motion", Description: "Physics of forces, speed, and acceleration", Sections: []string{"Types of forces", "Speed calculation", "Newton's laws"}},
			{Id: "s2", Name: "Periodic Table", Description: "Elements and the periodic table", Sections: []string{"Structure", "Groups & periods", "Common elements"}},
			{Id: "s3", Name: "Waves", Description: "Light and sound waves", Sections: []string{"Wave properties", "Reflection", "Refraction"}},
			{Id: "s4", Name: "Ecology", Description: "Ecosystems and food webs", Sections: []string{"Producers & consumers", "Food webs", "Environmental impact"}},
			{Id: "s5", Name: "Atomic Structure", Description: "Inside the atom", Sections: []string{"Subatomic particles", "Electron configuration", "Isotopes"}},
		},
		"9": {
			{Id: "s1", Name: "Genetics and Inheritance", Description: "DNA, genes, and heredity", Sections: []string{"DNA structure", "Inheritance patterns", "Genetic disorders"}},
			{Id: "s2", Name: "Energy and Power", Description: "Energy transfers and power calculations", Sections: []string{"Energy forms", "Conservation", "Power calculations"}},
			{Id: "s3", Name: "Organic Chemistry", Description: "Carbon compounds and hydrocarbons", Sections: []string{"Alkanes", "Alkenes", "Crude oil"}},
			{Id: "s4", Name: "Human Physiology", Description: "Advanced body systems", Sections: []string{"Nervous system", "Hormones", "Homeostasis"}},
			{Id: "s5", Name: "Chemical Bonding", Description: "Ionic, covalent, and metallic bonds", Sections: []string{"Ionic bonding", "Covalent bonding", "Metallic bonding"}},
		},
	},
	"homework": {
		"5": {
			{Id: "h1", Name: "Study Skills Basics", Description: "How to study effectively", Sections: []string{"Creating a study space", "Time management", "Note-taking"}},
			{Id: "h2", Name: "Reading Comprehension", Description: "Understanding what you read", Sections: []string{"Finding main ideas", "Making inferences", "Vocabulary"}},
			{Id: "h3", Name: "Writing Skills", Description: "Improving your writing", Sections: []string{"Paragraph structure", "Punctuation", "Editing"}},
			{Id: "h4", Name: "Memory Techniques", Description: "How to remember what you learn", Sections: []string{"Mnemonics", "Visualization", "Practice testing"}},
			{Id: "h5", Name: "Research Skills", Description: "Finding and using information", Sections: []string{"Using libraries", "Internet research", "Fact-checking"}},
		},
		"6": {
			{Id: "h1", Name: "Note-Taking Mastery", Description: "Advanced note-taking strategies", Sections: []string{"Cornell method", "Mind mapping", "Summary notes"}},
			{Id: "h2", Name: "Essay Writing", Description: "Structure and planning essays", Sections: []string{"Essay structure", "Thesis statements", "Supporting arguments"}},
			{Id: "h3", Name: "Exam Preparation", Description: "How to prepare for exams", Sections: []string{"Revision timetables", "Practice papers", "Exam technique"}},
			{Id: "h4", Name: "Critical Thinking", Description: "Analysing and evaluating information", Sections: []string{"Questioning sources", "Logical reasoning", "Problem-solving"}},
			{Id: "h5", Name: "Presentation Skills", Description: "Giving effective presentations", Sections: []string{"Planning", "Visual aids", "Public speaking"}},
		},
		"7": {
			{Id: "h1", Name: "Advanced Study Planning", Description: "Managing multiple subjects", Sections: []string{"Priority setting", "Long-term planning", "Balance"}},
			{Id: "h2", Name: "Scientific Writing", Description: "Writing lab reports and scientific explanations", Sections: []string{"Method writing", "Data presentation", "Conclusions"}},
			{Id: "h3", Name: "Mathematical Problem Solving", Description: "Approaching complex problems", Sections: []string{"Breaking down problems", "Checking work", "Multiple methods"}},
			{Id: "h4", Name: "Digital Literacy", Description: "Using technology for learning", Sections: []string{"Online research", "Digital tools", "Cyber safety"}},
			{Id: "h5", Name: "Collaboration Skills", Description: "Working effectively in groups", Sections: []string{"Team roles", "Communication", "Conflict resolution"}},
		},
		"8": {
			{Id: "h1", Name: "GCSE Preparation", Description: "Getting ready for GCSEs", Sections: []string{"Understanding GCSEs", "Grade boundaries", "Revision strategies"}},
			{Id: "h2", Name: "Extended Writing", Description: "Long-form essays and reports", Sections: []string{"Structure", "Evidence", "Analysis"}},
			{Id: "h3", Name: "Data Analysis", Description: "Interpreting graphs and statistics", Sections: []string{"Reading graphs", "Calculating statistics", "Drawing conclusions"}},
			{Id: "h4", Name: "Independent Learning", Description: "Self-directed study skills", Sections: []string{"Goal setting", "Self-motivation", "Reflection"}},
			{Id: "h5", Name: "Stress Management", Description: "Managing study stress", Sections: []string{"Recognising stress", "Coping strategies", "Work-life balance"}},
		},
		"9": {
			{Id: "h1", Name: "GCSE Exam Technique", Description: "Maximising marks in exams", Sections: []string{"Time management", "Question analysis", "Mark schemes"}},
			{Id: "h2", Name: "Coursework Excellence", Description: "Producing high-quality coursework", Sections: []string{"Planning", "Research", "Presentation"}},
			{Id: "h3", Name: "University & Career Prep", Description: "Planning your future", Sections: []string{"Options research", "Entry requirements", "Personal statements"}},
			{Id: "h4", Name: "Advanced Research", Description: "In-depth research projects", Sections: []string{"Research methods", "Referencing", "Academic integrity"}},
			{Id: "h5", Name: "Leadership Skills", Description: "Developing leadership abilities", Sections: []string{"Leadership styles", "Decision making", "Mentoring"}},
		},
	},
}
