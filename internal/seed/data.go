package seed

// Words is the starter vocabulary of a beginner Vietnamese course.
var Words = []WordEntry{
	{"chào", "hello/goodbye"},
	{"cô", "I/you (woman of older generation)"},
	{"em", "I/you (younger person or informal)"},
	{"tên", "name"},
	{"gì", "what"},
	{"hả", "huh? (expression of surprise or clarification)"},
	{"dạ", "yes (polite/formal) or politeness marker when responding"},
	{"cũng", "also/too"},
	{"hay", "interesting/cool"},
	{"vì", "because"},
	{"không", "no/not"},
	{"chị", "I/you (older sister or woman of similar age)"},
	{"anh", "I/you (older brother or man of similar age)"},
	{"là", "am/are/is (to be)"},
	{"người", "person"},
	{"nước", "country or water"},
	{"nào", "which"},
	{"tiếng", "language/speech"},
	{"mọi người", "everyone"},
	{"tại sao", "why"},
	{"học", "study/learn"},
	{"ủa", "huh? (surprised exclamation)"},
	{"đây", "this/here (near speaker)"},
	{"lớp", "class"},
	{"làm", "do/make"},
	{"nhân viên", "employee/office worker"},
	{"văn phòng", "office"},
	{"giáo viên", "teacher"},
	{"thiệt", "really/truly (Southern dialect)"},
	{"của", "of/belonging to (possessive marker)"},
	{"sống", "live (to be alive or reside)"},
	{"ở", "at/in/live (location or residence)"},
	{"đi", "go"},
	{"chưa", "not yet"},
	{"còn", "still/remaining"},
	{"bao nhiêu", "how much/how many"},
	{"tuổi", "age"},
	{"chồng", "husband"},
	{"vợ", "wife"},
	{"bạn", "friend"},
	{"bạn trai", "boyfriend"},
	{"bạn gái", "girlfriend"},
	{"có", "have/yes"},
	{"bàn", "table"},
	{"ghế", "chair"},
	{"điện thoại", "mobile phone"},
	{"ba lô", "backpack"},
	{"ly", "glass (for drinking)"},
	{"ai", "who"},
	{"quá", "very/too (indicates extreme degree)"},
	{"giỏi", "good/well/talented"},
	{"nói", "speak/say"},
	{"dở", "bad/badly"},
	{"biết", "know"},
	{"một", "one (number 1)"},
	{"hai", "two (number 2)"},
	{"ba", "three (number 3) or father"},
	{"bốn", "four (number 4)"},
	{"năm", "five (number 5)"},
	{"sáu", "six (number 6)"},
	{"bảy", "seven (number 7)"},
	{"tám", "eight (number 8)"},
	{"chín", "nine (number 9)"},
	{"mười", "ten (number 10)"},
	{"một trăm", "one hundred (100)"},
	{"một ngàn", "one thousand (1000)"},
	{"mười ngàn", "ten thousand (10000)"},
	{"vậy", "so/thus"},
	{"phải", "right/correct/must"},
	{"mẹ", "mother"},
	{"ba mẹ", "parents"},
	{"xe máy", "motorbike"},
	{"để", "let/in order to"},
	{"chở", "give a ride to/carry (on vehicle)"},
	{"đẹp", "beautiful/pretty"},
	{"ơi", "hey (vocative particle to get attention)"},
	{"ngày mai", "tomorrow"},
	{"ăn", "eat"},
	{"ăn tối", "have dinner/eat dinner"},
	{"thích", "like"},
	{"uống", "drink"},
	{"đồ ăn", "food"},
	{"phở", "pho (Vietnamese noodle soup)"},
	{"chả giò", "spring rolls"},
	{"cơm", "rice (cooked)"},
	{"bánh mì", "bread/Vietnamese sandwich"},
	{"cà phê sữa đá", "iced coffee with milk"},
	{"trà", "tea"},
	{"bia", "beer"},
	{"con", "I/you (person of younger generation, used by/to children)"},
	{"cho", "give/for"},
	{"muốn", "want"},
	{"cơm tấm", "broken rice (Vietnamese dish)"},
	{"rồi", "already/got it/OK"},
	{"ngon", "delicious/tasty"},
}

// GrammarPoints is the starter grammar of a beginner Vietnamese course.
var GrammarPoints = []GrammarEntry{
	{
		GrammarPoint:       "Không sao",
		EnglishExplanation: "Expression meaning 'no problem' or 'it's okay'",
		ExampleSentence:    "Không sao đâu! (No problem!)",
	},
	{
		GrammarPoint:       "Còn...?",
		EnglishExplanation: "Follow-up question particle meaning 'and...?' or 'what about...?'",
		ExampleSentence:    "Em là người Việt. Còn anh? (I'm Vietnamese. And you?)",
	},
	{
		GrammarPoint:       "Ở đâu",
		EnglishExplanation: "Question word for location meaning 'where'",
		ExampleSentence:    "Nhà vệ sinh ở đâu? (Where is the bathroom?)",
	},
	{
		GrammarPoint:       "Cũng vậy",
		EnglishExplanation: "Expression meaning 'me too' or 'same here'",
		ExampleSentence:    "Em thích phở. – Cũng vậy! (I like pho. – Me too!)",
	},
	{
		GrammarPoint:       "Ở đây",
		EnglishExplanation: "Expression meaning 'here' (location)",
		ExampleSentence:    "Em đang ở đây. (I am here now.)",
	},
	{
		GrammarPoint:       "Không có",
		EnglishExplanation: "Negative form meaning 'not have' or 'don't have'",
		ExampleSentence:    "Em không có tiền. (I don't have money.)",
	},
	{
		GrammarPoint:       "Chưa có",
		EnglishExplanation: "Negative form meaning 'not yet have' or 'don't have yet'",
		ExampleSentence:    "Em chưa có con. (I don't have children yet.)",
	},
	{
		GrammarPoint:       "Cái đó",
		EnglishExplanation: "Demonstrative meaning 'that thing'",
		ExampleSentence:    "Cái đó là điện thoại của em. (That is my phone.)",
	},
	{
		GrammarPoint:       "Cái này",
		EnglishExplanation: "Demonstrative meaning 'this thing'",
		ExampleSentence:    "Cái này là gì? (What is this?)",
	},
	{
		GrammarPoint:       "Cái gì",
		EnglishExplanation: "Question word for things meaning 'what thing' or 'what'",
		ExampleSentence:    "Em đang làm cái gì? (What are you doing?)",
	},
	{
		GrammarPoint:       "Của ai",
		EnglishExplanation: "Possessive question meaning 'whose'",
		ExampleSentence:    "Đây là sách của ai? (Whose book is this?)",
	},
	{
		GrammarPoint:       "Thiệt hả?",
		EnglishExplanation: "Question phrase meaning 'Really?' (Southern Vietnamese)",
		ExampleSentence:    "Em làm hết rồi. – Thiệt hả? (I finished everything. – Really?)",
	},
	{
		GrammarPoint:       "phải không",
		EnglishExplanation: "Tag question meaning 'right?' added to end of statements for confirmation",
		ExampleSentence:    "Em là người Mỹ, phải không? (You're American, right?)",
	},
	{
		GrammarPoint:       "không phải là",
		EnglishExplanation: "Negative form of 'to be' meaning 'am not/are not/is not'",
		ExampleSentence:    "Em không phải là người Mỹ. (I'm not American.)",
	},
	{
		GrammarPoint:       "... nữa",
		EnglishExplanation: "Particle meaning 'as well' or 'also', placed after the item being included",
		ExampleSentence:    "Em thích cà phê nữa. (I like coffee as well.)",
	},
	{
		GrammarPoint:       "Cho con...",
		EnglishExplanation: "Request pattern meaning 'Give me...' (when child/younger person asks elder)",
		ExampleSentence:    "Cho con một ly nước. (Give me a glass of water.)",
	},
	{
		GrammarPoint:       "... này",
		EnglishExplanation: "Demonstrative modifier meaning 'this' placed after the noun",
		ExampleSentence:    "Cái bàn này mới. (This table is new.)",
	},
	{
		GrammarPoint:       "Em thích ăn gì?",
		EnglishExplanation: "Question pattern: 'What do you like to eat?' - structure is [subject] + thích + [verb] + gì",
		ExampleSentence:    "Em thích ăn gì? (What do you like to eat?)",
	},
	{
		GrammarPoint:       "Em thích ăn...",
		EnglishExplanation: "Statement pattern: 'I like to eat...' - structure is [subject] + thích + [verb] + [object]",
		ExampleSentence:    "Em thích ăn phở. (I like to eat pho.)",
	},
	{
		GrammarPoint:       "Em không thích ăn...",
		EnglishExplanation: "Negative statement pattern: 'I don't like to eat...' - use không before thích to negate",
		ExampleSentence:    "Em không thích ăn cơm. (I don't like to eat rice.)",
	},
	{
		GrammarPoint:       "Em muốn ăn gì?",
		EnglishExplanation: "Question pattern: 'What do you want to eat?' - structure is [subject] + muốn + [verb] + gì",
		ExampleSentence:    "Em muốn ăn gì? (What do you want to eat?)",
	},
	{
		GrammarPoint:       "Em muốn ăn...",
		EnglishExplanation: "Statement pattern: 'I want to eat...' - structure is [subject] + muốn + [verb] + [object]",
		ExampleSentence:    "Em muốn ăn bánh mì. (I want to eat bread.)",
	},
	{
		GrammarPoint:       "Ngon quá!",
		EnglishExplanation: "Exclamation pattern using 'quá' after adjective to express 'so/very/too' with emphasis",
		ExampleSentence:    "Ngon quá! (So delicious!)",
	},
}
