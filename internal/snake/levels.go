package snake

// Level describes a campaign level: its wall layout, the food required to
// clear it, and the base movement interval in ticks.
type Level struct {
	Name           string
	Layout         []string // '#' = wall, anything else = open floor
	TargetFood     int
	MoveEveryTicks int
}

// Levels holds all campaign levels in play order. Endless mode cycles
// through the same layouts with increasing speed.
//
// Every open cell in a layout must be reachable from every other open cell;
// food spawns on any free cell, so a walled-off pocket would make a level
// unwinnable. TestLevelLayoutsConnected enforces this.
var Levels = []Level{
	{
		Name:           "Open Field",
		TargetFood:     5,
		MoveEveryTicks: 6,
		Layout: []string{
			"############################",
			"#                          #",
			"#                          #",
			"#                          #",
			"#                          #",
			"#                          #",
			"#                          #",
			"#                          #",
			"#                          #",
			"#                          #",
			"#                          #",
			"#                          #",
			"#                          #",
			"############################",
		},
	},
	{
		Name:           "The Block",
		TargetFood:     6,
		MoveEveryTicks: 6,
		Layout: []string{
			"############################",
			"#                          #",
			"#                          #",
			"#                          #",
			"#         ########         #",
			"#         ########         #",
			"#         ########         #",
			"#         ########         #",
			"#         ########         #",
			"#                          #",
			"#                          #",
			"#                          #",
			"#                          #",
			"############################",
		},
	},
	{
		Name:           "Pillars",
		TargetFood:     6,
		MoveEveryTicks: 5,
		Layout: []string{
			"############################",
			"#                          #",
			"#                          #",
			"#    ##    ##    ##    ##  #",
			"#    ##    ##    ##    ##  #",
			"#                          #",
			"#                          #",
			"#                          #",
			"#    ##    ##    ##    ##  #",
			"#    ##    ##    ##    ##  #",
			"#                          #",
			"#                          #",
			"#                          #",
			"############################",
		},
	},
	{
		Name:           "Corridors",
		TargetFood:     7,
		MoveEveryTicks: 5,
		Layout: []string{
			"############################",
			"#                          #",
			"#                          #",
			"#  ####################    #",
			"#                          #",
			"#                          #",
			"#    ####################  #",
			"#                          #",
			"#                          #",
			"#  ####################    #",
			"#                          #",
			"#                          #",
			"#                          #",
			"############################",
		},
	},
	{
		Name:           "The Cross",
		TargetFood:     7,
		MoveEveryTicks: 5,
		Layout: []string{
			"############################",
			"#                          #",
			"#                          #",
			"#            ##            #",
			"#            ##            #",
			"#            ##            #",
			"#      ##############      #",
			"#      ##############      #",
			"#            ##            #",
			"#            ##            #",
			"#            ##            #",
			"#                          #",
			"#                          #",
			"############################",
		},
	},
	{
		Name:           "Chambers",
		TargetFood:     8,
		MoveEveryTicks: 4,
		Layout: []string{
			"############################",
			"#            #             #",
			"#            #             #",
			"#            #             #",
			"#     ########             #",
			"#                          #",
			"#                          #",
			"#                          #",
			"#             ########     #",
			"#             #            #",
			"#             #            #",
			"#             #            #",
			"#             #            #",
			"############################",
		},
	},
	{
		Name:           "Zigzag",
		TargetFood:     8,
		MoveEveryTicks: 4,
		Layout: []string{
			"############################",
			"#                          #",
			"#  ########                #",
			"#         #                #",
			"#         #    ########    #",
			"#                      #   #",
			"#                      #   #",
			"#   #                      #",
			"#   #    ########          #",
			"#                #         #",
			"#                ########  #",
			"#                          #",
			"#                          #",
			"############################",
		},
	},
	{
		Name:           "Crossbars",
		TargetFood:     9,
		MoveEveryTicks: 4,
		Layout: []string{
			"############################",
			"#                          #",
			"#  ##  ######  ######  ##  #",
			"#                          #",
			"#  ######  ######  ######  #",
			"#                          #",
			"#  ##  ######  ######  ##  #",
			"#                          #",
			"#  ######  ######  ######  #",
			"#                          #",
			"#  ##  ######  ######  ##  #",
			"#                          #",
			"#                          #",
			"############################",
		},
	},
	{
		Name:           "Spiral",
		TargetFood:     9,
		MoveEveryTicks: 3,
		Layout: []string{
			"############################",
			"#                          #",
			"#  ####################    #",
			"#                     #    #",
			"#   ###############   #    #",
			"#   #             #   #    #",
			"#   #   #######   #   #    #",
			"#   #   #     #   #   #    #",
			"#   #   #  ####   #   #    #",
			"#   #   #         #   #    #",
			"#   #   ###########   #    #",
			"#   #                 #    #",
			"#   ###################    #",
			"############################",
		},
	},
	{
		Name:           "Gauntlet",
		TargetFood:     10,
		MoveEveryTicks: 3,
		Layout: []string{
			"############################",
			"#                          #",
			"#  #   #   #    #   #   #  #",
			"#  #   #   #    #   #   #  #",
			"#  #   #   #    #   #   #  #",
			"#                          #",
			"#    #   #   ##   #   #    #",
			"#    #   #   ##   #   #    #",
			"#                          #",
			"#  #   #   #    #   #   #  #",
			"#  #   #   #    #   #   #  #",
			"#  #   #   #    #   #   #  #",
			"#                          #",
			"############################",
		},
	},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at the given index, or nil if out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// LevelNames returns the names of all levels, in play order.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, level := range Levels {
		names[i] = level.Name
	}
	return names
}
