package run

// roomContent is one catalog entry of flavor content
type roomContent struct {
	key         string
	name        string
	description string
	monsters    []string
	treasure    []string
}

// sectionCatalog holds the content lists for one section
type sectionCatalog struct {
	combat   []roomContent
	events   []roomContent
	treasure []roomContent
}

// zoneCatalog holds everything buildable for one story
type zoneCatalog struct {
	sections map[Section]sectionCatalog
	shopkeep roomContent
	rest     roomContent
	boss     roomContent
}

func catalogFor(dungeonType DungeonType) zoneCatalog {
	switch dungeonType {
	case DungeonTypeOcean:
		return oceanCatalog
	case DungeonTypeUnderworld:
		return underworldCatalog
	default:
		return forestCatalog
	}
}

var forestCatalog = zoneCatalog{
	sections: map[Section]sectionCatalog{
		SectionQuietGrove: {
			combat: []roomContent{
				{key: "grove_wolves", name: "Hungry Wolves", description: "Low growls circle the clearing. Yellow eyes catch the light.", monsters: []string{"wolf", "wolf"}},
				{key: "grove_bandits", name: "Bandit Camp", description: "A cookfire smolders beside a toppled cart. The bandits reach for their blades.", monsters: []string{"bandit", "bandit", "bandit"}},
				{key: "grove_spiders", name: "Webbed Hollow", description: "Silk strands thicken between the trunks the deeper you walk.", monsters: []string{"giant-spider"}},
			},
			events: []roomContent{
				{key: "grove_shrine", name: "Mossy Shrine", description: "A weathered shrine sits half-swallowed by moss. Something glimmers in the offering bowl."},
				{key: "grove_traveler", name: "Lost Traveler", description: "A traveler waves you down, pointing frantically back the way they came."},
				{key: "grove_brook", name: "Singing Brook", description: "The water hums an almost-melody. Drinking it feels like a decision."},
			},
			treasure: []roomContent{
				{key: "grove_cache", name: "Hollow Stump Cache", description: "Someone hid a strongbox inside the rotted stump.", treasure: []string{"coin-pouch", "herb-bundle"}},
				{key: "grove_grave", name: "Forgotten Grave", description: "The headstone is blank, but the earth has been turned recently.", treasure: []string{"silver-ring"}},
			},
		},
		SectionScreamingCopse: {
			combat: []roomContent{
				{key: "copse_treants", name: "Waking Roots", description: "The trees here move when you stop looking at them.", monsters: []string{"treant-sapling", "treant-sapling"}},
				{key: "copse_harpies", name: "Harpy Roost", description: "Feathers and bones carpet the ground beneath a shrieking canopy.", monsters: []string{"harpy", "harpy"}},
				{key: "copse_stalker", name: "The Stalker", description: "You have been followed for the last three rooms. It stops hiding.", monsters: []string{"shadow-stalker"}},
			},
			events: []roomContent{
				{key: "copse_echo", name: "Echoing Scream", description: "A scream rings out with no obvious source, then again, closer."},
				{key: "copse_circle", name: "Mushroom Circle", description: "A perfect ring of pale mushrooms. Stepping inside seems unwise. Or lucky."},
				{key: "copse_hermit", name: "Hermit's Lean-To", description: "An old hermit offers a trade without saying what either side of it is."},
			},
			treasure: []roomContent{
				{key: "copse_nest", name: "Looted Nest", description: "A harpy nest woven through with stolen valuables.", treasure: []string{"coin-pouch", "glass-beads"}},
				{key: "copse_chest", name: "Chained Chest", description: "The chains are rusted through. Whatever they were for, it is gone now.", treasure: []string{"old-blade"}},
			},
		},
		SectionWhisperingWoods: {
			combat: []roomContent{
				{key: "woods_wisps", name: "Wisp Swarm", description: "Lights drift between the trees, each whisper pulling you off the path.", monsters: []string{"wisp", "wisp", "wisp"}},
				{key: "woods_dryad", name: "Corrupted Dryad", description: "Bark splits along her arms like armor. The forest bends toward her.", monsters: []string{"corrupted-dryad"}},
				{key: "woods_pack", name: "Dire Pack", description: "The wolves here are larger, and they hunt in silence.", monsters: []string{"dire-wolf", "dire-wolf"}},
			},
			events: []roomContent{
				{key: "woods_door", name: "Door in a Tree", description: "An oak with a door fitted seamlessly into its trunk. There is no handle."},
				{key: "woods_mirror", name: "Still Pool", description: "Your reflection moves a half-beat behind you."},
				{key: "woods_voice", name: "The Whisper", description: "The woods finally say something you can understand. It knows your name."},
			},
			treasure: []roomContent{
				{key: "woods_heartwood", name: "Heartwood Hollow", description: "The tree's hollow heart cradles something old and bright.", treasure: []string{"heartwood-charm", "coin-pouch"}},
				{key: "woods_offering", name: "Abandoned Offering", description: "Gifts left for something that never came to collect them.", treasure: []string{"silver-ring", "herb-bundle"}},
			},
		},
	},
	shopkeep: roomContent{key: "forest_shopkeep", name: "The Peddler's Wagon", description: "A cheerful peddler has set up shop in the least sensible place imaginable."},
	rest:     roomContent{key: "forest_rest", name: "Sheltered Clearing", description: "Soft grass, a fire ring, and for once, silence. The party can catch its breath."},
	boss:     roomContent{key: "forest_boss", name: "The Rotwood Warden", description: "The grove's guardian has long since stopped guarding anything but its own decay.", monsters: []string{"rotwood-warden"}},
}

var oceanCatalog = zoneCatalog{
	sections: map[Section]sectionCatalog{
		SectionSunkenShallows: {
			combat: []roomContent{
				{key: "shallows_crabs", name: "Reef Crabs", description: "The rocks stand up and start walking toward you.", monsters: []string{"reef-crab", "reef-crab"}},
				{key: "shallows_eels", name: "Eel Garden", description: "Every crevice hides a mouth full of needles.", monsters: []string{"moray", "moray"}},
				{key: "shallows_raiders", name: "Wreck Raiders", description: "Scavengers picking over a wreck take exception to competition.", monsters: []string{"raider", "raider", "raider"}},
			},
			events: []roomContent{
				{key: "shallows_current", name: "Strange Current", description: "A warm current tugs sideways, toward somewhere it should not be warm."},
				{key: "shallows_bottle", name: "Sealed Bottle", description: "A bottle wedged in coral, its message still dry inside."},
				{key: "shallows_song", name: "Distant Song", description: "Something is singing beyond the drop-off. The tune is beautiful. That is the problem."},
			},
			treasure: []roomContent{
				{key: "shallows_wreck", name: "Shallow Wreck", description: "The hold split open years ago, spilling its cargo across the sand.", treasure: []string{"pearl", "coin-pouch"}},
				{key: "shallows_bed", name: "Oyster Bed", description: "Generations of oysters, and a few of them kept secrets.", treasure: []string{"pearl"}},
			},
		},
		SectionDrownedReef: {
			combat: []roomContent{
				{key: "reef_sharks", name: "Circling Sharks", description: "Gray shapes wheel overhead, patient as the tide.", monsters: []string{"reef-shark", "reef-shark"}},
				{key: "reef_drowned", name: "The Drowned", description: "Sailors who never surfaced, still walking the reef they died on.", monsters: []string{"drowned-sailor", "drowned-sailor", "drowned-sailor"}},
				{key: "reef_anglers", name: "Angler Ambush", description: "The lights in the dark are lures. All of them.", monsters: []string{"angler"}},
			},
			events: []roomContent{
				{key: "reef_idol", name: "Coral Idol", description: "The reef has grown around a carved idol, or the idol has grown the reef."},
				{key: "reef_bell", name: "Sunken Bell", description: "A ship's bell, still on its mount. It wants to be rung."},
				{key: "reef_tithe", name: "The Tithe", description: "A stone bowl on a pedestal. The reef expects payment for passage."},
			},
			treasure: []roomContent{
				{key: "reef_captain", name: "Captain's Cabin", description: "The captain went down with the ship, and the ship kept the strongbox.", treasure: []string{"coin-pouch", "brine-charm"}},
				{key: "reef_cargo", name: "Scattered Cargo", description: "Crates burst across the reef shelf, their contents barely touched.", treasure: []string{"pearl", "coin-pouch"}},
			},
		},
		SectionMidnightTrench: {
			combat: []roomContent{
				{key: "trench_horror", name: "Trench Horror", description: "It unfolds out of the dark, limb after limb after limb.", monsters: []string{"trench-horror"}},
				{key: "trench_swarm", name: "Lantern Swarm", description: "A thousand cold lights converge at once.", monsters: []string{"lantern-fish", "lantern-fish", "lantern-fish"}},
				{key: "trench_priest", name: "Abyssal Priest", description: "It prays in pressure and cold, and the trench answers.", monsters: []string{"abyssal-priest", "drowned-sailor"}},
			},
			events: []roomContent{
				{key: "trench_dark", name: "Perfect Dark", description: "The last light fails. Something in the dark is deciding about you."},
				{key: "trench_gate", name: "The Gate Below", description: "Far beneath, an arch of stone glows faintly. It was built by no drowned hand."},
				{key: "trench_whale", name: "Whalefall", description: "A cathedral of ribs on the trench floor, still feeding the deep."},
			},
			treasure: []roomContent{
				{key: "trench_hoard", name: "Pressure Hoard", description: "Everything the trench has swallowed ends up somewhere. This is somewhere.", treasure: []string{"abyssal-pearl", "coin-pouch"}},
				{key: "trench_vault", name: "Barnacled Vault", description: "A vault door in the trench wall, older than any shipping lane.", treasure: []string{"brine-charm", "abyssal-pearl"}},
			},
		},
	},
	shopkeep: roomContent{key: "ocean_shopkeep", name: "The Diving Merchant", description: "A merchant in a brass diving suit, shelves bolted to their back. Prices are negotiable. Air is not."},
	rest:     roomContent{key: "ocean_rest", name: "Air Pocket Grotto", description: "A bubble of breathable calm in the reef. The party can surface and rest."},
	boss:     roomContent{key: "ocean_boss", name: "Leviathan of the Trench", description: "The trench was never empty. It was occupied.", monsters: []string{"leviathan"}},
}

var underworldCatalog = zoneCatalog{
	sections: map[Section]sectionCatalog{
		SectionAshenCrossing: {
			combat: []roomContent{
				{key: "crossing_shades", name: "Restless Shades", description: "The queue for the crossing has been waiting a long time, and it resents the living.", monsters: []string{"shade", "shade", "shade"}},
				{key: "crossing_hounds", name: "Ash Hounds", description: "They bay without sound, and their footprints smolder.", monsters: []string{"ash-hound", "ash-hound"}},
				{key: "crossing_toll", name: "The Toll-Taker", description: "It blocks the bridge and names a price no one would pay willingly.", monsters: []string{"toll-taker"}},
			},
			events: []roomContent{
				{key: "crossing_ferry", name: "Empty Ferry", description: "The ferry waits at the bank, poled by no one. It creaks an invitation."},
				{key: "crossing_coins", name: "River of Coins", description: "The shallows glitter with passage fees. Every coin belongs to someone."},
				{key: "crossing_names", name: "Wall of Names", description: "Names crawl across the stone. One of them is freshly carved. It might be yours."},
			},
			treasure: []roomContent{
				{key: "crossing_tollbox", name: "Toll-Taker's Box", description: "Centuries of fares, unguarded for exactly this moment.", treasure: []string{"obol", "coin-pouch"}},
				{key: "crossing_pyre", name: "Cold Pyre", description: "Grave goods survived the fire that claimed everything else.", treasure: []string{"bone-charm"}},
			},
		},
		SectionObsidianCourt: {
			combat: []roomContent{
				{key: "court_knights", name: "Obsidian Knights", description: "The statues lining the hall are not statues.", monsters: []string{"obsidian-knight", "obsidian-knight"}},
				{key: "court_judge", name: "The Lesser Judge", description: "It reads your sentence before you have done anything. Efficient.", monsters: []string{"lesser-judge"}},
				{key: "court_wraiths", name: "Court Wraiths", description: "Petitioners who argued their case for so long they became it.", monsters: []string{"wraith", "wraith"}},
			},
			events: []roomContent{
				{key: "court_trial", name: "An Open Docket", description: "The court offers to hear any grievance. Against anyone. Living or dead."},
				{key: "court_scales", name: "The Scales", description: "A set of scales on a plinth, one side already weighted with a feather."},
				{key: "court_archive", name: "Archive of Verdicts", description: "Every judgment ever passed, shelved and humming. One drawer is open."},
			},
			treasure: []roomContent{
				{key: "court_evidence", name: "Evidence Vault", description: "Confiscated goods from ten thousand trials, meticulously labeled.", treasure: []string{"obol", "onyx-seal"}},
				{key: "court_bribe", name: "The Unclaimed Bribe", description: "Someone tried to buy a verdict. The court kept both.", treasure: []string{"coin-pouch", "coin-pouch"}},
			},
		},
		SectionThroneOfEmbers: {
			combat: []roomContent{
				{key: "throne_guard", name: "Ember Guard", description: "The honor guard burns at attention, and you are not on the list.", monsters: []string{"ember-guard", "ember-guard"}},
				{key: "throne_furnace", name: "Furnace Colossus", description: "Its chest is an open furnace, and the room is its bellows.", monsters: []string{"furnace-colossus"}},
				{key: "throne_choir", name: "Choir of Cinders", description: "Their hymn sheds sparks. The verses are getting faster.", monsters: []string{"cinder-chorister", "cinder-chorister", "cinder-chorister"}},
			},
			events: []roomContent{
				{key: "throne_petition", name: "The Petition", description: "A line of the dead waits to ask the throne for one thing each. The line parts for you."},
				{key: "throne_crown", name: "A Crown, Cooling", description: "A crown rests on a pedestal, still warm. No body in sight."},
				{key: "throne_gate", name: "Gate of Embers", description: "The final gate burns without fuel. It has burned since before fuel."},
			},
			treasure: []roomContent{
				{key: "throne_tribute", name: "Hall of Tribute", description: "Offerings to the throne from kingdoms that no longer exist.", treasure: []string{"ember-crown-shard", "obol"}},
				{key: "throne_vault", name: "The King's Vault", description: "What a king of the dead considers valuable says a great deal.", treasure: []string{"onyx-seal", "coin-pouch"}},
			},
		},
	},
	shopkeep: roomContent{key: "underworld_shopkeep", name: "The Gravegoods Broker", description: "A broker of last effects, delighted by customers who can still haggle."},
	rest:     roomContent{key: "underworld_rest", name: "The Quiet Antechamber", description: "A room the dead avoid. For the living, that makes it the safest place down here."},
	boss:     roomContent{key: "underworld_boss", name: "The Pale King", description: "The throne is occupied. It has noticed you.", monsters: []string{"pale-king"}},
}
