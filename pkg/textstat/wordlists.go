package textstat

// Familiar-word lists for the Dale-Chall and Spache formulas. Both formulas
// count a word as difficult only when it has two or more syllables AND is
// missing from the list, so single-syllable words never need an entry; the
// lists below carry the common multi-syllable vocabulary from the published
// familiar-word sets.

var daleChallFamiliar = map[string]struct{}{
	"about": {}, "above": {}, "across": {}, "after": {}, "afternoon": {},
	"again": {}, "against": {}, "ago": {}, "agree": {}, "airplane": {},
	"almost": {}, "alone": {}, "along": {}, "already": {}, "also": {},
	"always": {}, "among": {}, "animal": {}, "another": {}, "answer": {},
	"any": {}, "anybody": {}, "anyone": {}, "anything": {}, "apple": {},
	"around": {}, "away": {}, "baby": {}, "backward": {}, "balloon": {},
	"banana": {}, "basket": {}, "beautiful": {}, "became": {}, "because": {},
	"become": {}, "before": {}, "began": {}, "begin": {}, "behind": {},
	"being": {}, "believe": {}, "belong": {}, "below": {}, "beside": {},
	"better": {}, "between": {}, "bicycle": {}, "birthday": {}, "body": {},
	"borrow": {}, "bother": {}, "bottle": {}, "bottom": {}, "breakfast": {},
	"brother": {}, "building": {}, "busy": {}, "butter": {}, "button": {},
	"cabbage": {}, "candy": {}, "carry": {}, "carrot": {}, "center": {},
	"certain": {}, "chicken": {}, "children": {}, "city": {}, "color": {},
	"coming": {}, "company": {}, "copy": {}, "corner": {}, "cotton": {},
	"country": {}, "cover": {}, "cracker": {}, "crazy": {}, "cupboard": {},
	"daddy": {}, "danger": {}, "daughter": {}, "decide": {}, "deliver": {},
	"different": {}, "dinner": {}, "doctor": {}, "dollar": {}, "donkey": {},
	"double": {}, "dozen": {}, "dragon": {}, "dresser": {}, "during": {},
	"early": {}, "easy": {}, "eaten": {}, "either": {}, "elephant": {},
	"eleven": {}, "empty": {}, "enemy": {}, "engine": {}, "enjoy": {},
	"enough": {}, "even": {}, "evening": {}, "ever": {}, "every": {},
	"everybody": {}, "everyone": {}, "everything": {}, "everywhere": {},
	"expect": {}, "family": {}, "father": {}, "fellow": {}, "finger": {},
	"finish": {}, "flower": {}, "follow": {}, "forget": {}, "forgot": {},
	"forward": {}, "funny": {}, "garden": {}, "gather": {}, "gentle": {},
	"getting": {}, "given": {}, "going": {}, "golden": {}, "goodbye": {},
	"grandfather": {}, "grandmother": {}, "happen": {}, "happy": {},
	"hello": {}, "herself": {}, "himself": {}, "history": {}, "holiday": {},
	"honey": {}, "hundred": {}, "hungry": {}, "hurry": {}, "idea": {},
	"important": {}, "inside": {}, "instead": {}, "into": {}, "iron": {},
	"island": {}, "itself": {}, "jacket": {}, "jelly": {}, "kitchen": {},
	"kitten": {}, "ladder": {}, "lady": {}, "later": {}, "laughter": {},
	"lazy": {}, "leather": {}, "lesson": {}, "letter": {}, "little": {},
	"lonely": {}, "lovely": {}, "lumber": {}, "machine": {}, "many": {},
	"marry": {}, "matter": {}, "maybe": {}, "meadow": {}, "measure": {},
	"middle": {}, "minute": {}, "mister": {}, "moment": {}, "money": {},
	"monkey": {}, "morning": {}, "mother": {}, "mountain": {}, "movie": {},
	"music": {}, "myself": {}, "nation": {}, "nearly": {}, "neighbor": {},
	"neither": {}, "never": {}, "nobody": {}, "noise": {}, "nothing": {},
	"number": {}, "obey": {}, "ocean": {}, "offer": {}, "office": {},
	"often": {}, "only": {}, "open": {}, "orange": {}, "order": {},
	"other": {}, "outside": {}, "over": {}, "paper": {}, "pardon": {},
	"party": {}, "pasture": {}, "pencil": {}, "penny": {}, "people": {},
	"perhaps": {}, "person": {}, "picnic": {}, "picture": {}, "pillow": {},
	"pleasant": {}, "pleasure": {}, "plenty": {}, "pocket": {}, "poison": {},
	"policeman": {}, "pony": {}, "postage": {}, "potato": {}, "power": {},
	"present": {}, "pretty": {}, "promise": {}, "proper": {}, "pudding": {},
	"pumpkin": {}, "puppy": {}, "purple": {}, "question": {}, "quiet": {},
	"rabbit": {}, "rather": {}, "ready": {}, "really": {}, "reason": {},
	"remember": {}, "ribbon": {}, "river": {}, "rubber": {}, "sandwich": {},
	"second": {}, "secret": {}, "seven": {}, "several": {}, "shadow": {},
	"silver": {}, "sister": {}, "sleepy": {}, "somebody": {}, "someone": {},
	"something": {}, "sometime": {}, "sometimes": {}, "somewhere": {},
	"sorry": {}, "squirrel": {}, "station": {}, "stocking": {}, "stomach": {},
	"story": {}, "stranger": {}, "sudden": {}, "sugar": {}, "summer": {},
	"supper": {}, "suppose": {}, "surely": {}, "surprise": {}, "swimming": {},
	"table": {}, "teacher": {}, "thousand": {}, "ticket": {}, "tiger": {},
	"tiny": {}, "tired": {}, "today": {}, "together": {}, "tomorrow": {},
	"tonight": {}, "toward": {}, "tractor": {}, "trouble": {}, "truly": {},
	"turkey": {}, "turtle": {}, "twenty": {}, "ugly": {}, "umbrella": {},
	"uncle": {}, "under": {}, "understand": {}, "until": {}, "upon": {},
	"upper": {}, "upstairs": {}, "valentine": {}, "valley": {}, "very": {},
	"village": {}, "visit": {}, "wagon": {}, "wander": {}, "water": {},
	"weather": {}, "welcome": {}, "whether": {}, "window": {}, "winter": {},
	"without": {}, "woman": {}, "women": {}, "wonder": {}, "wonderful": {},
	"yellow": {}, "yesterday": {}, "yonder": {}, "yourself": {},
}

var spacheFamiliar = map[string]struct{}{
	"about": {}, "afraid": {}, "after": {}, "again": {}, "airplane": {},
	"almost": {}, "alone": {}, "along": {}, "already": {}, "also": {},
	"always": {}, "animal": {}, "another": {}, "answer": {}, "any": {},
	"anything": {}, "apple": {}, "around": {}, "away": {}, "baby": {},
	"balloon": {}, "basket": {}, "because": {}, "become": {}, "before": {},
	"began": {}, "begin": {}, "behind": {}, "believe": {}, "belong": {},
	"beside": {}, "better": {}, "birthday": {}, "bother": {}, "bottom": {},
	"breakfast": {}, "brother": {}, "bunny": {}, "busy": {}, "butter": {},
	"candy": {}, "carry": {}, "children": {}, "city": {}, "color": {},
	"coming": {}, "corner": {}, "country": {}, "cover": {}, "daddy": {},
	"dinner": {}, "doctor": {}, "dollar": {}, "during": {}, "early": {},
	"easy": {}, "either": {}, "elephant": {}, "enough": {}, "even": {},
	"evening": {}, "ever": {}, "every": {}, "everyone": {}, "everything": {},
	"family": {}, "father": {}, "finish": {}, "flower": {}, "follow": {},
	"forget": {}, "funny": {}, "garden": {}, "going": {}, "grandfather": {},
	"grandmother": {}, "happen": {}, "happy": {}, "hello": {}, "herself": {},
	"himself": {}, "honey": {}, "hungry": {}, "hurry": {}, "idea": {},
	"inside": {}, "into": {}, "kitten": {}, "lady": {}, "later": {},
	"letter": {}, "little": {}, "many": {}, "maybe": {}, "middle": {},
	"minute": {}, "moment": {}, "money": {}, "monkey": {}, "morning": {},
	"mother": {}, "myself": {}, "never": {}, "nothing": {}, "number": {},
	"only": {}, "open": {}, "other": {}, "outside": {}, "over": {},
	"paper": {}, "party": {}, "penny": {}, "people": {}, "picture": {},
	"pocket": {}, "pony": {}, "pretty": {}, "puppy": {}, "rabbit": {},
	"rather": {}, "ready": {}, "really": {}, "remember": {}, "river": {},
	"second": {}, "seven": {}, "shadow": {}, "sister": {}, "sleepy": {},
	"somebody": {}, "someone": {}, "something": {}, "sometimes": {},
	"sorry": {}, "squirrel": {}, "story": {}, "sudden": {}, "sugar": {},
	"summer": {}, "supper": {}, "surprise": {}, "table": {}, "teacher": {},
	"tiger": {}, "tiny": {}, "tired": {}, "today": {}, "together": {},
	"tomorrow": {}, "tonight": {}, "toward": {}, "trouble": {}, "turkey": {},
	"turtle": {}, "twenty": {}, "umbrella": {}, "uncle": {}, "under": {},
	"until": {}, "upon": {}, "very": {}, "visit": {}, "wagon": {},
	"water": {}, "window": {}, "winter": {}, "without": {}, "woman": {},
	"wonder": {}, "yellow": {}, "yesterday": {}, "yourself": {},
}
