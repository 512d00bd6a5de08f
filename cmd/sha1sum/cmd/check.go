package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/digestkit/sha1sum/digest"
	"github.com/digestkit/sha1sum/errors"
	"github.com/digestkit/sha1sum/hashutil"
	"github.com/digestkit/sha1sum/logging"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Verify digests read from a checksum file",
	Long: `Verify digests read from a checksum file.

Each line names one expected digest in the form produced by the root
command: 40 hexadecimal characters, two spaces, then the input path.
Lines starting with '#' and blank lines are skipped. Every line is
verified independently; a bad line or a mismatch is reported and the
remaining lines are still processed.`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	f, err := os.Open(args[0])
	if err != nil {
		logging.CPrint(logging.ERROR, errors.ErrCode[errors.ErrCLIOpenChecksumFile],
			logging.LogFormat{"file": args[0], "err": err})
		failedInputs++
		return
	}
	defer f.Close()

	lineNo := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		want, name, ok := parseChecksumLine(line)
		if !ok {
			logging.CPrint(logging.ERROR, errors.ErrCode[errors.ErrCLIBadChecksumLine],
				logging.LogFormat{"file": args[0], "line": lineNo})
			failedInputs++
			continue
		}

		got, err := hashutil.SumFile(name)
		if err != nil {
			logging.CPrint(logging.ERROR, errors.ErrCode[errors.ErrCLIHashInput],
				logging.LogFormat{"input": name, "err": err})
			fmt.Printf("%s: FAILED\n", name)
			failedInputs++
			continue
		}

		if !got.IsEqual(want) {
			logging.VPrint(logging.WARN, errors.ErrCode[errors.ErrCLIDigestMismatch],
				logging.LogFormat{"input": name, "want": want, "got": got})
			fmt.Printf("%s: FAILED\n", name)
			failedInputs++
			continue
		}
		fmt.Printf("%s: OK\n", name)
	}
	if err := scanner.Err(); err != nil {
		logging.CPrint(logging.ERROR, errors.ErrCode[errors.ErrCLIReadInput],
			logging.LogFormat{"file": args[0], "err": err})
		failedInputs++
	}
}

// parseChecksumLine splits "<40 hex chars>  <name>" into its parts. A
// '*' binary marker before the name is accepted for compatibility with
// other checksum tools.
func parseChecksumLine(line string) (*digest.Digest, string, bool) {
	if len(line) < digest.MaxDigestStringSize+2 {
		return nil, "", false
	}
	hexPart := line[:digest.MaxDigestStringSize]
	rest := line[digest.MaxDigestStringSize:]
	if rest[0] != ' ' {
		return nil, "", false
	}
	name := strings.TrimPrefix(rest[1:], " ")
	name = strings.TrimPrefix(name, "*")
	if name == "" {
		return nil, "", false
	}

	d, err := digest.NewDigestFromStr(hexPart)
	if err != nil {
		return nil, "", false
	}
	return d, name, true
}
