/* handlers.go
 * Contains testable handler methods that accept a DiscordSession interface
 */

package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/go-andiamo/splitter"

	"survivor-pool/api/shared"
)

// helpMessageHandler handles the $help command
func (b *Bot) helpMessageHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("Survivor Pool Bot\n")
	res.WriteString("`$info`: pool details including season, member count and scoring options\n")
	res.WriteString("`$join`: register yourself in the pool\n")
	res.WriteString("`$picks week team1 ... teamN [guess]`: set your weekly picks, one winner per game in kickoff order. ")
	res.WriteString("If the pool uses a tiebreaker, finish with your combined-score guess for the final game\n")
	res.WriteString("`$survivor week team`: set your survivor pick for the week\n")
	res.WriteString("`$standings`: season standings with survivor status\n")
	res.WriteString("`$week n`: scoring for week n, provisional while games are in progress\n")
	res.WriteString("`$upcoming n`: week n games that have not kicked off yet\n")
	res.WriteString("There is fuzzy matching on team names. Names that contain spaces need to be encased in \" (e.g. \"Green Bay\")\n")
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// infoHandler handles the $info command
func (b *Bot) infoHandler(session DiscordSession, message *discordgo.MessageCreate) {
	info, err := b.APIPtr.GetPoolInfo()
	if err != nil {
		fmt.Println(err)
		session.ChannelMessageSend(message.ChannelID, "An unexpected error occured")
		return
	}
	var res strings.Builder
	for i := range info {
		res.WriteString(fmt.Sprintf("%s\n", info[i]))
	}
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// joinHandler handles the $join command
func (b *Bot) joinHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.Member{UserID: message.Author.ID, Name: message.Author.Username}
	if err := b.APIPtr.RegisterMember(user); err != nil {
		fmt.Println(err)
		session.ChannelMessageSend(message.ChannelID, "An unexpected error occured")
		return
	}
	session.ChannelMessageSend(message.ChannelID,
		fmt.Sprintf("%s has joined the pool", shared.NormalizeName(user.Name)))
}

// setPicksHandler handles the $picks command. The expected shape is
// `$picks <week> team1 ... teamN [guess]` where the optional trailing
// integer is the tiebreaker guess.
func (b *Bot) setPicksHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.Member{UserID: message.Author.ID, Name: message.Author.Username}

	// we use splitter here instead of go's built in splitter because now we
	// can have team names that contain spaces e.g. "Green Bay" recognised as
	// one team not two
	spaceSplitter, _ := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	args, _ := spaceSplitter.Split(message.Content)
	if len(args) < 3 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $picks week team1 ... teamN [tiebreaker guess]")
		return
	}

	week, err := strconv.Atoi(args[1])
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("'%s' is not a week number", args[1]))
		return
	}

	teams := args[2:]
	var guess *int
	if len(teams) > 1 {
		if g, err := strconv.Atoi(teams[len(teams)-1]); err == nil {
			guess = &g
			teams = teams[:len(teams)-1]
		}
	}

	res := fmt.Sprintf("%s's week %d picks have been updated", shared.NormalizeName(user.Name), week)
	if err := b.APIPtr.SetPicks(user, week, teams, guess); err != nil {
		fmt.Println(err)
		res = fmt.Sprintf("An error occured setting %s's picks: %s", user.Name, err)
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// survivorHandler handles the $survivor command. With no arguments it shows
// the survivor report; with `<week> <team>` it sets the author's pick.
func (b *Bot) survivorHandler(session DiscordSession, message *discordgo.MessageCreate) {
	spaceSplitter, _ := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	args, _ := spaceSplitter.Split(message.Content)

	if len(args) == 1 {
		report, err := b.APIPtr.GetSurvivorReport()
		if err != nil {
			fmt.Println(err)
			session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Could not fetch survivor state: %s", err))
			return
		}
		session.ChannelMessageSend(message.ChannelID, report)
		return
	}

	if len(args) != 3 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $survivor [week team]")
		return
	}
	week, err := strconv.Atoi(args[1])
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("'%s' is not a week number", args[1]))
		return
	}

	user := shared.Member{UserID: message.Author.ID, Name: message.Author.Username}
	res := fmt.Sprintf("%s's week %d survivor pick has been updated", shared.NormalizeName(user.Name), week)
	if err := b.APIPtr.SetSurvivorPick(user, week, args[2]); err != nil {
		fmt.Println(err)
		res = fmt.Sprintf("An error occured setting %s's survivor pick: %s", user.Name, err)
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// standingsHandler handles the $standings command
func (b *Bot) standingsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	standings, err := b.APIPtr.GetStandings()
	if err != nil {
		fmt.Println(err)
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Could not fetch standings: %s", err))
		return
	}
	session.ChannelMessageSend(message.ChannelID, standings)
}

// weekHandler handles the $week command
func (b *Bot) weekHandler(session DiscordSession, message *discordgo.MessageCreate) {
	week, ok := b.weekArg(session, message, "$week")
	if !ok {
		return
	}
	report, err := b.APIPtr.GetWeekReport(week)
	if err != nil {
		fmt.Println(err)
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Could not fetch week %d: %s", week, err))
		return
	}
	session.ChannelMessageSend(message.ChannelID, report)
}

// upcomingHandler handles the $upcoming command
func (b *Bot) upcomingHandler(session DiscordSession, message *discordgo.MessageCreate) {
	week, ok := b.weekArg(session, message, "$upcoming")
	if !ok {
		return
	}
	matchups, err := b.APIPtr.GetUpcomingMatchups(week)
	if err != nil {
		fmt.Println(err)
		session.ChannelMessageSend(message.ChannelID, "An unexpected error occured")
		return
	}

	var res strings.Builder
	if len(matchups) == 0 {
		res.WriteString("No upcoming games this week")
	} else {
		res.WriteString("Upcoming games:\n")
		for _, m := range matchups {
			res.WriteString(m)
		}
	}
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// weekArg parses a single trailing week-number argument. Defaults to the
// feed's current week when omitted.
func (b *Bot) weekArg(session DiscordSession, message *discordgo.MessageCreate, command string) (int, bool) {
	fields := strings.Fields(message.Content)
	if len(fields) == 1 {
		_, week, _ := b.APIPtr.Feed.CurrentWeek(context.Background())
		return week, true
	}
	week, err := strconv.Atoi(fields[1])
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Usage: %s [week]", command))
		return 0, false
	}
	return week, true
}
