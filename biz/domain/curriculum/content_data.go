package curriculum

// curatedSections 按小节名索引
var curatedSections = map[string]Material{
	"One-step equations": {
		Narration: "**One-step equations** need just ONE operation to solve.\n\n**Example:** x + 5 = 12\n\nTo solve: Subtract 5 from both sides\nx = 12 - 5\nx = 7\n\n**Remember:** Do the opposite operation!",
		Board:     "One-Step Equations\n\nx + 5 = 12\n\nSubtract 5:\nx = 12 - 5\nx = 7 ✓\n\nOpposite operation!",
	},
	"Two-step equations": {
		Narration: "**Two-step equations** need TWO operations.\n\n**Example:** 2x + 3 = 11\n\nStep 1: Subtract 3\n2x = 8\n\nStep 2: Divide by 2\nx = 4\n\n**Order matters!** Undo addition/subtraction first, then multiplication/division.",
		Board:     "Two-Step Equations\n\n2x + 3 = 11\n\nStep 1: -3\n2x = 8\n\nStep 2: ÷2\nx = 4 ✓\n\nOrder matters!",
	},
	"Plant parts": {
		Narration: "**Plants have 4 main parts:**\n\n1. **Roots** - absorb water and nutrients\n2. **Stem** - supports the plant\n3. **Leaves** - make food (photosynthesis)\n4. **Flower** - makes seeds\n\nEach part has a special job!",
		Board:     "Plant Parts\n\n1. Roots → Water\n2. Stem → Support\n3. Leaves → Food\n4. Flower → Seeds\n\nEach has a job!",
	},
	"Photosynthesis intro": {
		Narration: "**Photosynthesis** is how plants make food!\n\n**What plants need:**\n☀️ Sunlight\n💧 Water\n💨 Carbon dioxide\n\n**What plants make:**\n🍃 Glucose (food)\n💨 Oxygen\n\n**Equation:** CO₂ + H₂O + light → Glucose + O₂",
		Board:     "Photosynthesis\n\nNeeds:\n☀️ Light\n💧 Water\n💨 CO₂\n\nMakes:\n🍃 Glucose\n💨 Oxygen",
	},
	"Animal cells": {
		Narration: "**Animal cells have 4 main parts:**\n\n1. **Nucleus** - controls the cell (like a brain)\n2. **Cytoplasm** - jelly where reactions happen\n3. **Cell membrane** - controls what enters/leaves\n4. **Mitochondria** - releases energy\n\nEach part is essential!",
		Board:     "Animal Cell\n\n1. Nucleus → Control\n2. Cytoplasm → Reactions\n3. Membrane → Gatekeeper\n4. Mitochondria → Energy",
	},
}

// curatedExamples 按课题名索引
var curatedExamples = map[string]Material{
	"Linear Equations": {
		Narration: "Let's solve: **3x + 7 = 22**\n\nStep 1: Subtract 7 from both sides\n3x = 22 - 7\n3x = 15\n\nStep 2: Divide both sides by 3\nx = 15 ÷ 3\nx = 5\n\nCheck: 3(5) + 7 = 15 + 7 = 22 ✓",
		Board:     "Solve: 3x + 7 = 22\n\nStep 1: -7\n3x = 15\n\nStep 2: ÷3\nx = 5\n\n✓ Check: 3(5)+7=22",
	},
	"Pythagoras Theorem": {
		Narration: "Find the hypotenuse when a=6 and b=8:\n\nc² = 6² + 8²\nc² = 36 + 64\nc² = 100\nc = √100\nc = 10\n\nSo the hypotenuse is 10 units!",
		Board:     "a=6, b=8, find c\n\nc² = 36+64\nc² = 100\nc = 10 ✓",
	},
}

var curatedPractices = map[string]Material{
	"Linear Equations": {
		Narration: "Solve: **2x + 5 = 17**\n\nShow your working step by step!\n\nHint: What do you do first?",
		Board:     "Solve: 2x + 5 = 17\n\n\nWorking:\n\n\n\nAnswer: x = ?",
	},
	"Pythagoras Theorem": {
		Narration: "Find the hypotenuse when a=5 and b=12\n\nShow all your working!\n\nHint: Use c² = a² + b²",
		Board:     "a=5, b=12, find c\n\n\nWorking:\n\n\n\nAnswer: c = ?",
	},
}

var curatedAlternatives = map[string]string{
	"Linear Equations":   "**Think of it like a puzzle!**\n\nImagine you have a mystery number (x).\n\nThe equation tells you:\n\"Double the mystery number, then add 5, and you get 17\"\n\nTo find x, we UNDO each step:\n1. Undo \"+5\" by subtracting 5\n2. Undo \"×2\" by dividing by 2\n\nThat's it! 🎯",
	"Pythagoras Theorem": "**Visual way to think about it:**\n\nImagine squares on each side of the triangle!\n\nThe two smaller squares (on sides a and b)...\nWhen you add their areas together...\nThey equal the big square (on side c)!\n\nThat's why: a² + b² = c²",
}
